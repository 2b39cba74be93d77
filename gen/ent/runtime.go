// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/nota-music/nota-pipeline/db/ent/schema"
	"github.com/nota-music/nota-pipeline/gen/ent/category"
	"github.com/nota-music/nota-pipeline/gen/ent/processingjob"
	"github.com/nota-music/nota-pipeline/gen/ent/score"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	categoryFields := schema.Category{}.Fields()
	_ = categoryFields
	// categoryDescName is the schema descriptor for name field.
	categoryDescName := categoryFields[1].Descriptor()
	// category.NameValidator is a validator for the "name" field. It is called by the builders before save.
	category.NameValidator = func() func(string) error {
		validators := categoryDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// categoryDescID is the schema descriptor for id field.
	categoryDescID := categoryFields[0].Descriptor()
	// category.DefaultID holds the default value on creation for the id field.
	category.DefaultID = categoryDescID.Default.(func() uuid.UUID)
	processingjobFields := schema.ProcessingJob{}.Fields()
	_ = processingjobFields
	// processingjobDescSourceKey is the schema descriptor for source_key field.
	processingjobDescSourceKey := processingjobFields[2].Descriptor()
	// processingjob.SourceKeyValidator is a validator for the "source_key" field. It is called by the builders before save.
	processingjob.SourceKeyValidator = processingjobDescSourceKey.Validators[0].(func(string) error)
	// processingjobDescSourceFormat is the schema descriptor for source_format field.
	processingjobDescSourceFormat := processingjobFields[3].Descriptor()
	// processingjob.SourceFormatValidator is a validator for the "source_format" field. It is called by the builders before save.
	processingjob.SourceFormatValidator = func() func(string) error {
		validators := processingjobDescSourceFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(source_format string) error {
			for _, fn := range fns {
				if err := fn(source_format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// processingjobDescStage is the schema descriptor for stage field.
	processingjobDescStage := processingjobFields[4].Descriptor()
	// processingjob.DefaultStage holds the default value on creation for the stage field.
	processingjob.DefaultStage = processingjobDescStage.Default.(string)
	// processingjob.StageValidator is a validator for the "stage" field. It is called by the builders before save.
	processingjob.StageValidator = processingjobDescStage.Validators[0].(func(string) error)
	// processingjobDescAttemptCount is the schema descriptor for attempt_count field.
	processingjobDescAttemptCount := processingjobFields[5].Descriptor()
	// processingjob.DefaultAttemptCount holds the default value on creation for the attempt_count field.
	processingjob.DefaultAttemptCount = processingjobDescAttemptCount.Default.(int)
	// processingjob.AttemptCountValidator is a validator for the "attempt_count" field. It is called by the builders before save.
	processingjob.AttemptCountValidator = processingjobDescAttemptCount.Validators[0].(func(int) error)
	// processingjobDescCancelRequested is the schema descriptor for cancel_requested field.
	processingjobDescCancelRequested := processingjobFields[10].Descriptor()
	// processingjob.DefaultCancelRequested holds the default value on creation for the cancel_requested field.
	processingjob.DefaultCancelRequested = processingjobDescCancelRequested.Default.(bool)
	// processingjobDescVersion is the schema descriptor for version field.
	processingjobDescVersion := processingjobFields[14].Descriptor()
	// processingjob.DefaultVersion holds the default value on creation for the version field.
	processingjob.DefaultVersion = processingjobDescVersion.Default.(int)
	// processingjob.VersionValidator is a validator for the "version" field. It is called by the builders before save.
	processingjob.VersionValidator = processingjobDescVersion.Validators[0].(func(int) error)
	// processingjobDescCreatedAt is the schema descriptor for created_at field.
	processingjobDescCreatedAt := processingjobFields[15].Descriptor()
	// processingjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	processingjob.DefaultCreatedAt = processingjobDescCreatedAt.Default.(func() time.Time)
	// processingjobDescUpdatedAt is the schema descriptor for updated_at field.
	processingjobDescUpdatedAt := processingjobFields[16].Descriptor()
	// processingjob.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	processingjob.DefaultUpdatedAt = processingjobDescUpdatedAt.Default.(func() time.Time)
	// processingjob.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	processingjob.UpdateDefaultUpdatedAt = processingjobDescUpdatedAt.UpdateDefault.(func() time.Time)
	// processingjobDescID is the schema descriptor for id field.
	processingjobDescID := processingjobFields[0].Descriptor()
	// processingjob.DefaultID holds the default value on creation for the id field.
	processingjob.DefaultID = processingjobDescID.Default.(func() uuid.UUID)
	scoreFields := schema.Score{}.Fields()
	_ = scoreFields
	// scoreDescTitle is the schema descriptor for title field.
	scoreDescTitle := scoreFields[1].Descriptor()
	// score.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	score.TitleValidator = func() func(string) error {
		validators := scoreDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// scoreDescComposer is the schema descriptor for composer field.
	scoreDescComposer := scoreFields[2].Descriptor()
	// score.DefaultComposer holds the default value on creation for the composer field.
	score.DefaultComposer = scoreDescComposer.Default.(string)
	// score.ComposerValidator is a validator for the "composer" field. It is called by the builders before save.
	score.ComposerValidator = scoreDescComposer.Validators[0].(func(string) error)
	// scoreDescProcessed is the schema descriptor for processed field.
	scoreDescProcessed := scoreFields[5].Descriptor()
	// score.DefaultProcessed holds the default value on creation for the processed field.
	score.DefaultProcessed = scoreDescProcessed.Default.(bool)
	// scoreDescUploadedAt is the schema descriptor for uploaded_at field.
	scoreDescUploadedAt := scoreFields[8].Descriptor()
	// score.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	score.DefaultUploadedAt = scoreDescUploadedAt.Default.(func() time.Time)
	// scoreDescID is the schema descriptor for id field.
	scoreDescID := scoreFields[0].Descriptor()
	// score.DefaultID holds the default value on creation for the id field.
	score.DefaultID = scoreDescID.Default.(func() uuid.UUID)
}
