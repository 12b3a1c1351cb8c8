package packetapi

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strings"
)

// Fault identifiers returned by the Packet API.
const (
	FaultPacketAttributes     = "PacketAttributesFault"
	FaultIncorrectAPIPassword = "IncorrectApiPasswordFault"
	FaultPacketID             = "PacketIdFault"
	FaultCannotCancelPacket   = "CannotCancelPacketFault"
	FaultPacketIDs            = "PacketIdsFault"
	FaultNoPacketIDs          = "NoPacketIdsFault"
)

type ValidationError struct {
	Field   string
	Message string
}

// Fault is a SOAP fault returned by the Packet API.
type Fault struct {
	Identifier       string
	Message          string
	ValidationErrors []ValidationError
}

func (f *Fault) Error() string {
	if len(f.ValidationErrors) == 0 {
		return fmt.Sprintf("packet API fault %s: %s", f.Identifier, f.Message)
	}
	parts := make([]string, len(f.ValidationErrors))
	for i, v := range f.ValidationErrors {
		parts[i] = v.Field + ": " + v.Message
	}
	return fmt.Sprintf("packet API fault %s: %s (%s)", f.Identifier, f.Message, strings.Join(parts, ", "))
}

// IsFault reports whether err is a Packet API fault with the given identifier.
func IsFault(err error, identifier string) bool {
	var fault *Fault
	return errors.As(err, &fault) && fault.Identifier == identifier
}

type soapFault struct {
	Code   string `xml:"faultcode"`
	String string `xml:"faultstring"`
	Detail struct {
		Inner []byte `xml:",innerxml"`
	} `xml:"detail"`
}

type faultDetail struct {
	XMLName    xml.Name
	Attributes []struct {
		Name  string `xml:"name"`
		Fault string `xml:"fault"`
	} `xml:"attributes>fault"`
}

func (f *soapFault) toFault() *Fault {
	fault := &Fault{
		Identifier: f.Code,
		Message:    strings.TrimSpace(f.String),
	}

	var detail faultDetail
	inner := strings.TrimSpace(string(f.Detail.Inner))
	if inner == "" || xml.Unmarshal([]byte(inner), &detail) != nil {
		return fault
	}
	if detail.XMLName.Local != "" {
		fault.Identifier = detail.XMLName.Local
	}
	for _, a := range detail.Attributes {
		fault.ValidationErrors = append(fault.ValidationErrors, ValidationError{Field: a.Name, Message: a.Fault})
	}
	return fault
}
