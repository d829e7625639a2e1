// Package tracefb is the flatbuffers binding for a single recorded trace
// decision. It is written by hand in the shape flatc would generate from a
// schema such as:
//
//	table Record {
//	  schema_version:int32;
//	  features:[int32];
//	  outcome:int32;
//	}
//	root_type Record;
//
// since no flatc binary is available in this environment to generate it
// from an actual .fbs file. The calling convention (Builder/Table,
// StartXVector/PrependInt32/EndVector, XStart/XAddField/XEnd,
// GetRootAsX) matches github.com/google/flatbuffers/go as used elsewhere
// in the retrieved example pack.
package tracefb

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

// Record is a read accessor over an encoded trace decision.
type Record struct {
	_tab flatbuffers.Table
}

// GetRootAsRecord returns a Record view over buf, reading the root table
// offset the same way every flatc-generated root accessor does.
func GetRootAsRecord(buf []byte, offset flatbuffers.UOffsetT) *Record {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	r := &Record{}
	r.Init(buf, n+offset)
	return r
}

// Init lets a Record be reused over a different buffer/offset.
func (r *Record) Init(buf []byte, i flatbuffers.UOffsetT) {
	r._tab.Bytes = buf
	r._tab.Pos = i
}

// Table exposes the underlying flatbuffers table, matching the generated
// accessor every flatc table type carries.
func (r *Record) Table() flatbuffers.Table { return r._tab }

// SchemaVersion returns field 0, defaulting to 0 if absent.
func (r *Record) SchemaVersion() int32 {
	o := flatbuffers.UOffsetT(r._tab.Offset(4))
	if o == 0 {
		return 0
	}
	return r._tab.GetInt32(o + r._tab.Pos)
}

// FeaturesLength returns the number of entries in the features vector.
func (r *Record) FeaturesLength() int {
	o := flatbuffers.UOffsetT(r._tab.Offset(6))
	if o == 0 {
		return 0
	}
	return r._tab.VectorLen(o)
}

// Features returns the j'th entry of the features vector.
func (r *Record) Features(j int) int32 {
	o := flatbuffers.UOffsetT(r._tab.Offset(6))
	if o == 0 {
		return 0
	}
	a := r._tab.Vector(o)
	return r._tab.GetInt32(a + flatbuffers.UOffsetT(j)*4)
}

// Outcome returns field 2, defaulting to 0 (loss) if absent.
func (r *Record) Outcome() int32 {
	o := flatbuffers.UOffsetT(r._tab.Offset(8))
	if o == 0 {
		return 0
	}
	return r._tab.GetInt32(o + r._tab.Pos)
}

// RecordStart begins building a Record table.
func RecordStart(b *flatbuffers.Builder) {
	b.StartObject(3)
}

// RecordAddSchemaVersion sets field 0.
func RecordAddSchemaVersion(b *flatbuffers.Builder, v int32) {
	b.PrependInt32Slot(0, v, 0)
}

// RecordAddFeatures sets field 1 to a vector offset built with
// RecordStartFeaturesVector.
func RecordAddFeatures(b *flatbuffers.Builder, features flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(1, flatbuffers.UOffsetT(features), 0)
}

// RecordStartFeaturesVector begins a vector of numElems int32s; callers
// must call b.PrependInt32 numElems times in reverse order and then
// b.EndVector(numElems) themselves before passing the resulting offset to
// RecordAddFeatures, matching every flatc-generated StartXVector helper.
func RecordStartFeaturesVector(b *flatbuffers.Builder, numElems int) flatbuffers.UOffsetT {
	return b.StartVector(4, numElems, 4)
}

// RecordAddOutcome sets field 2.
func RecordAddOutcome(b *flatbuffers.Builder, v int32) {
	b.PrependInt32Slot(2, v, 0)
}

// RecordEnd finishes the table and returns its offset.
func RecordEnd(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	return b.EndObject()
}
