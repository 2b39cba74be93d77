package constants

// ArtifactKind identifies one file produced or consumed by the pipeline.
type ArtifactKind string

// Stable values (used in store keys and the job's artifacts map).
const (
	ArtifactSource        ArtifactKind = "source"         // uploaded score file
	ArtifactMusicXML      ArtifactKind = "musicxml"       // recognized score (uncompressed XML)
	ArtifactMIDI          ArtifactKind = "midi"           // rendered playback file
	ArtifactExtractedText ArtifactKind = "extracted_text" // structured text document (JSON)
	ArtifactSummary       ArtifactKind = "summary"        // generated summary (plain text)
)

// DownloadableKinds lists the kinds exposed at the artifact download
// boundary, in presentation order.
var DownloadableKinds = []ArtifactKind{
	ArtifactMusicXML,
	ArtifactMIDI,
	ArtifactExtractedText,
	ArtifactSummary,
}

var artifactExts = map[ArtifactKind]string{
	ArtifactMusicXML:      ".xml",
	ArtifactMIDI:          ".mid",
	ArtifactExtractedText: ".json",
	ArtifactSummary:       ".txt",
}

var artifactContentTypes = map[ArtifactKind]string{
	ArtifactMusicXML:      "application/vnd.recordare.musicxml+xml",
	ArtifactMIDI:          "audio/midi",
	ArtifactExtractedText: "application/json",
	ArtifactSummary:       "text/plain; charset=utf-8",
}

// Ext returns the canonical file extension for a kind ("" for source,
// whose extension follows the upload).
func (k ArtifactKind) Ext() string {
	return artifactExts[k]
}

// ContentType returns the MIME type stored alongside the artifact.
func (k ArtifactKind) ContentType() string {
	if ct, ok := artifactContentTypes[k]; ok {
		return ct
	}
	return "application/octet-stream"
}

// ParseArtifactKind converts a string into a known downloadable kind.
func ParseArtifactKind(value string) (ArtifactKind, bool) {
	k := ArtifactKind(value)
	for _, known := range DownloadableKinds {
		if k == known {
			return k, true
		}
	}
	return "", false
}
