package core

import "encoding/json"

// Field marks which values of a GeometryRecord are meaningful.
type Field uint8

const (
	FieldPosition Field = 1 << iota
	FieldSize
)

// GeometryRecord is a snapshot of an object's position and/or scaled size
// taken when a notification is delivered.
type GeometryRecord struct {
	Kind     NotificationKind
	ObjectID string
	X        float64
	Y        float64
	Width    float64
	Height   float64
	Fields   Field
}

func (r GeometryRecord) HasPosition() bool {
	return r.Fields&FieldPosition != 0
}

func (r GeometryRecord) HasSize() bool {
	return r.Fields&FieldSize != 0
}

type geometryJSON struct {
	Kind   NotificationKind `json:"kind"`
	ID     string           `json:"id,omitempty"`
	X      *float64         `json:"x,omitempty"`
	Y      *float64         `json:"y,omitempty"`
	Width  *float64         `json:"width,omitempty"`
	Height *float64         `json:"height,omitempty"`
}

// MarshalJSON emits only the fields the record carries, so a moving record
// encodes as {"kind":"object:moving","x":40,"y":60}.
func (r GeometryRecord) MarshalJSON() ([]byte, error) {
	out := geometryJSON{Kind: r.Kind, ID: r.ObjectID}
	if r.HasPosition() {
		out.X, out.Y = &r.X, &r.Y
	}
	if r.HasSize() {
		out.Width, out.Height = &r.Width, &r.Height
	}
	return json.Marshal(out)
}

func (r *GeometryRecord) UnmarshalJSON(data []byte) error {
	var in geometryJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	*r = GeometryRecord{Kind: in.Kind, ObjectID: in.ID}
	if in.X != nil || in.Y != nil {
		r.Fields |= FieldPosition
		if in.X != nil {
			r.X = *in.X
		}
		if in.Y != nil {
			r.Y = *in.Y
		}
	}
	if in.Width != nil || in.Height != nil {
		r.Fields |= FieldSize
		if in.Width != nil {
			r.Width = *in.Width
		}
		if in.Height != nil {
			r.Height = *in.Height
		}
	}
	return nil
}
