// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/subhashitt/LogPiolt/ent/analysisjob"
	"github.com/subhashitt/LogPiolt/ent/logbatch"
	"github.com/subhashitt/LogPiolt/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	analysisjobFields := schema.AnalysisJob{}.Fields()
	_ = analysisjobFields
	// analysisjobDescCreatedAt is the schema descriptor for created_at field.
	analysisjobDescCreatedAt := analysisjobFields[6].Descriptor()
	// analysisjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	analysisjob.DefaultCreatedAt = analysisjobDescCreatedAt.Default.(func() time.Time)
	logbatchFields := schema.LogBatch{}.Fields()
	_ = logbatchFields
	// logbatchDescCreatedAt is the schema descriptor for created_at field.
	logbatchDescCreatedAt := logbatchFields[7].Descriptor()
	// logbatch.DefaultCreatedAt holds the default value on creation for the created_at field.
	logbatch.DefaultCreatedAt = logbatchDescCreatedAt.Default.(func() time.Time)
}
