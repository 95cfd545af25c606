// Package ping defines the small demo object crosslinkctl's send/listen/
// monitor commands exchange, exercising the crosslink codec end to end
// without requiring a user to bring their own schema first.
package ping

import (
	"github.com/strand-protocol/crosslink/pkg/crosslink"
	"github.com/strand-protocol/crosslink/pkg/schema"
)

// Ping is a minimal record: a sequence number and free-form text.
type Ping struct {
	Sequence uint32
	Message  string
}

// Fields builds Ping's field descriptor.
func Fields(o *Ping) schema.Descriptor {
	return schema.Descriptor{
		schema.Uint32Field(
			func(owner interface{}) uint32 { return owner.(*Ping).Sequence },
			func(owner interface{}, v uint32) { owner.(*Ping).Sequence = v },
		),
		schema.StringField(
			func(owner interface{}) string { return owner.(*Ping).Message },
			func(owner interface{}, v string) { owner.(*Ping).Message = v },
		),
	}
}

// Spec is Ping's object binding: ID 1, the only type on the wire by
// default in crosslinkctl's demo commands.
var Spec = crosslink.ObjectSpec[Ping]{ID: 1, Fields: Fields}
