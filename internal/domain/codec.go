package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"gorm.io/gorm/schema"
)

// TimestampLayout is the wire format of every record timestamp.
const TimestampLayout = "2006-01-02 15:04:05"

// ID is a record identifier as seen by API clients: always a plain string.
//
// On MongoDB a 24-hex value is stored as a native ObjectID and decoded back to
// its hex form; anything else is stored as a string. SQL backends store the
// string as is.
type ID string

// String returns the identifier text.
func (id ID) String() string { return string(id) }

// IsZero reports whether the id is unset. The BSON encoder uses it for omitempty.
func (id ID) IsZero() bool { return id == "" }

// MarshalBSONValue implements bson.ValueMarshaler.
func (id ID) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if oid, err := primitive.ObjectIDFromHex(string(id)); err == nil {
		return bson.MarshalValue(oid)
	}
	return bson.MarshalValue(string(id))
}

// UnmarshalBSONValue implements bson.ValueUnmarshaler.
func (id *ID) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.ObjectID:
		*id = ID(raw.ObjectID().Hex())
	case bsontype.String:
		*id = ID(raw.StringValue())
	case bsontype.Null, bsontype.Undefined:
		*id = ""
	default:
		return fmt.Errorf("domain: cannot decode bson %s into ID", t)
	}
	return nil
}

// Timestamp is a UTC instant rendered as "YYYY-MM-DD HH:MM:SS" on the wire.
// The zero value encodes as JSON null.
type Timestamp struct {
	time.Time
}

// NewTimestamp truncates t to microseconds and normalizes it to UTC.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC().Truncate(time.Microsecond)}
}

// String returns the wire form.
func (t Timestamp) String() string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(TimestampLayout)
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.String())
}

// UnmarshalJSON implements json.Unmarshaler. It accepts the wire layout and RFC 3339.
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*t = Timestamp{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := parseTimestamp(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (t Timestamp) MarshalYAML() (any, error) {
	return t.String(), nil
}

// MarshalBSONValue stores the instant as a BSON datetime.
func (t Timestamp) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(t.UTC())
}

// UnmarshalBSONValue accepts datetimes and, for legacy documents, strings.
func (t *Timestamp) UnmarshalBSONValue(bt bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: bt, Value: data}
	switch bt {
	case bsontype.DateTime:
		*t = NewTimestamp(raw.Time())
	case bsontype.String:
		parsed, err := parseTimestamp(raw.StringValue())
		if err != nil {
			return err
		}
		*t = parsed
	case bsontype.Null, bsontype.Undefined:
		*t = Timestamp{}
	default:
		return fmt.Errorf("domain: cannot decode bson %s into Timestamp", bt)
	}
	return nil
}

// GormDataType maps the column to the dialect's time type.
func (Timestamp) GormDataType() string { return string(schema.Time) }

// Value implements driver.Valuer.
func (t Timestamp) Value() (driver.Value, error) {
	return t.UTC(), nil
}

// Scan implements sql.Scanner. SQLite drivers hand back either time.Time or text.
func (t *Timestamp) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*t = Timestamp{}
	case time.Time:
		*t = NewTimestamp(v)
	case string:
		parsed, err := parseTimestamp(v)
		if err != nil {
			return err
		}
		*t = parsed
	case []byte:
		parsed, err := parseTimestamp(string(v))
		if err != nil {
			return err
		}
		*t = parsed
	default:
		return fmt.Errorf("domain: cannot scan %T into Timestamp", src)
	}
	return nil
}

var timestampLayouts = []string{
	TimestampLayout,
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
}

func parseTimestamp(s string) (Timestamp, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return NewTimestamp(ts), nil
		}
	}
	return Timestamp{}, fmt.Errorf("domain: invalid timestamp %q", s)
}
