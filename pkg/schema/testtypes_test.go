package schema_test

// Demo record types mirroring original_source/test/test_objects.hpp,
// translated from the REFL_AUTO-annotated C++ structs into Go types with
// their own schema.Descriptor-building function. Object IDs are kept
// identical to the source header so a reader can cross-reference the two.

import "github.com/strand-protocol/crosslink/pkg/schema"

// Simple mirrors TestObjectSimple (object id 1).
type Simple struct {
	ID    int32
	Value float32
}

func simpleFields(o *Simple) schema.Descriptor {
	return schema.Descriptor{
		schema.Int32Field(
			func(owner interface{}) int32 { return owner.(*Simple).ID },
			func(owner interface{}, v int32) { owner.(*Simple).ID = v },
		),
		schema.Float32Field(
			func(owner interface{}) float32 { return owner.(*Simple).Value },
			func(owner interface{}, v float32) { owner.(*Simple).Value = v },
		),
	}
}

// WithString mirrors TestObjectWithString (object id 2).
type WithString struct {
	UUID int32
	Name string
}

func withStringFields(o *WithString) schema.Descriptor {
	return schema.Descriptor{
		schema.Int32Field(
			func(owner interface{}) int32 { return owner.(*WithString).UUID },
			func(owner interface{}, v int32) { owner.(*WithString).UUID = v },
		),
		schema.StringField(
			func(owner interface{}) string { return owner.(*WithString).Name },
			func(owner interface{}, v string) { owner.(*WithString).Name = v },
		),
	}
}

// WithSimpleVectorAndArray mirrors TestWithSimpleVectorAndArray (object id 3):
// a scalar, a variable-length sequence of scalars, and a fixed-length
// sequence of scalars backed by a Go array.
type WithSimpleVectorAndArray struct {
	Pi          float32
	Numbers     []int32
	Coordinates [3]float64
}

func withSimpleVectorAndArrayFields(o *WithSimpleVectorAndArray) schema.Descriptor {
	return schema.Descriptor{
		schema.Float32Field(
			func(owner interface{}) float32 { return owner.(*WithSimpleVectorAndArray).Pi },
			func(owner interface{}, v float32) { owner.(*WithSimpleVectorAndArray).Pi = v },
		),
		schema.SequenceField[int32](
			func(owner interface{}) []int32 { return owner.(*WithSimpleVectorAndArray).Numbers },
			func(owner interface{}, v []int32) { owner.(*WithSimpleVectorAndArray).Numbers = v },
			schema.Int32,
		),
		schema.FixedSequenceField[float64](3,
			func(owner interface{}) []float64 { return owner.(*WithSimpleVectorAndArray).Coordinates[:] },
			func(owner interface{}, v []float64) {
				copy(owner.(*WithSimpleVectorAndArray).Coordinates[:], v)
			},
			schema.Float64,
		),
	}
}

// WithComplexVectorAndArray mirrors TestWithComplexVectorAndArray (object
// id 4): a string, a variable-length sequence of strings, and a
// fixed-length sequence of variable-length int sequences.
type WithComplexVectorAndArray struct {
	UUID    string
	Names   []string
	Vectors [3][]int32
}

func withComplexVectorAndArrayFields(o *WithComplexVectorAndArray) schema.Descriptor {
	return schema.Descriptor{
		schema.StringField(
			func(owner interface{}) string { return owner.(*WithComplexVectorAndArray).UUID },
			func(owner interface{}, v string) { owner.(*WithComplexVectorAndArray).UUID = v },
		),
		schema.SequenceField[string](
			func(owner interface{}) []string { return owner.(*WithComplexVectorAndArray).Names },
			func(owner interface{}, v []string) { owner.(*WithComplexVectorAndArray).Names = v },
			schema.String,
		),
		schema.FixedSequenceField[[]int32](3,
			func(owner interface{}) [][]int32 { return owner.(*WithComplexVectorAndArray).Vectors[:] },
			func(owner interface{}, v [][]int32) {
				copy(owner.(*WithComplexVectorAndArray).Vectors[:], v)
			},
			schema.SequenceElemOf(schema.Int32),
		),
	}
}

// WithClassVectorAndArray mirrors TestWithClassVectorAndArray (object id
// 5): a scalar, a variable-length sequence of nested records, and a
// fixed-length sequence of a different nested record type.
type WithClassVectorAndArray struct {
	ID          uint16
	Objects     []WithComplexVectorAndArray
	ObjectArray [3]WithString
}

func withClassVectorAndArrayFields(o *WithClassVectorAndArray) schema.Descriptor {
	return schema.Descriptor{
		schema.Uint16Field(
			func(owner interface{}) uint16 { return owner.(*WithClassVectorAndArray).ID },
			func(owner interface{}, v uint16) { owner.(*WithClassVectorAndArray).ID = v },
		),
		schema.SequenceField[WithComplexVectorAndArray](
			func(owner interface{}) []WithComplexVectorAndArray {
				return owner.(*WithClassVectorAndArray).Objects
			},
			func(owner interface{}, v []WithComplexVectorAndArray) {
				owner.(*WithClassVectorAndArray).Objects = v
			},
			schema.RecordElemOf(withComplexVectorAndArrayFields),
		),
		schema.FixedSequenceField[WithString](3,
			func(owner interface{}) []WithString { return owner.(*WithClassVectorAndArray).ObjectArray[:] },
			func(owner interface{}, v []WithString) {
				copy(owner.(*WithClassVectorAndArray).ObjectArray[:], v)
			},
			schema.RecordElemOf(withStringFields),
		),
	}
}

// CommQuality and CommState mirror the two enums CommStatus embeds.
// crosslink has no first-class enum shape; on the wire an enum is just
// the scalar its C++ underlying type names (uint8_t here), so these are
// plain Go byte-sized named types carried by Uint8Field.
type CommQuality uint8

const (
	CommQualityNone CommQuality = iota
	CommQualityLow
	CommQualityMedium
	CommQualityHigh
)

type CommState uint8

const (
	CommStateDisconnected CommState = 0
	CommStateConnected    CommState = 1
	CommStateError        CommState = 10
)

// CommStatus mirrors CommStatus (object id 6).
type CommStatus struct {
	LastReceivedMessageAgeMs uint64
	BleRSSI                  float32
	RadioRSSI                float32
	EspNowRSSI               float32
	BleQuality               CommQuality
	RadioQuality             CommQuality
	EspNowQuality            CommQuality
	BleState                 CommState
	EspNowState              CommState
	RadioState               CommState
}

func commStatusFields(o *CommStatus) schema.Descriptor {
	return schema.Descriptor{
		schema.Uint64Field(
			func(owner interface{}) uint64 { return owner.(*CommStatus).LastReceivedMessageAgeMs },
			func(owner interface{}, v uint64) { owner.(*CommStatus).LastReceivedMessageAgeMs = v },
		),
		schema.Float32Field(
			func(owner interface{}) float32 { return owner.(*CommStatus).BleRSSI },
			func(owner interface{}, v float32) { owner.(*CommStatus).BleRSSI = v },
		),
		schema.Float32Field(
			func(owner interface{}) float32 { return owner.(*CommStatus).RadioRSSI },
			func(owner interface{}, v float32) { owner.(*CommStatus).RadioRSSI = v },
		),
		schema.Float32Field(
			func(owner interface{}) float32 { return owner.(*CommStatus).EspNowRSSI },
			func(owner interface{}, v float32) { owner.(*CommStatus).EspNowRSSI = v },
		),
		schema.Uint8Field(
			func(owner interface{}) uint8 { return uint8(owner.(*CommStatus).BleQuality) },
			func(owner interface{}, v uint8) { owner.(*CommStatus).BleQuality = CommQuality(v) },
		),
		schema.Uint8Field(
			func(owner interface{}) uint8 { return uint8(owner.(*CommStatus).RadioQuality) },
			func(owner interface{}, v uint8) { owner.(*CommStatus).RadioQuality = CommQuality(v) },
		),
		schema.Uint8Field(
			func(owner interface{}) uint8 { return uint8(owner.(*CommStatus).EspNowQuality) },
			func(owner interface{}, v uint8) { owner.(*CommStatus).EspNowQuality = CommQuality(v) },
		),
		schema.Uint8Field(
			func(owner interface{}) uint8 { return uint8(owner.(*CommStatus).BleState) },
			func(owner interface{}, v uint8) { owner.(*CommStatus).BleState = CommState(v) },
		),
		schema.Uint8Field(
			func(owner interface{}) uint8 { return uint8(owner.(*CommStatus).EspNowState) },
			func(owner interface{}, v uint8) { owner.(*CommStatus).EspNowState = CommState(v) },
		),
		schema.Uint8Field(
			func(owner interface{}) uint8 { return uint8(owner.(*CommStatus).RadioState) },
			func(owner interface{}, v uint8) { owner.(*CommStatus).RadioState = CommState(v) },
		),
	}
}
