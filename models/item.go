package models

// Item is the single business entity exposed by the API.
//
// JSON field names keep the wire format used by existing browser clients
// (capitalised keys). ID is assigned by the store on creation; any ID sent
// by the client on create is ignored.
type Item struct {
	// ID is the store-assigned primary key. Immutable after creation.
	ID int64 `json:"ID"`

	// Name is limited to 200 characters by the schema.
	Name string `json:"Name"`

	// Price is stored as a plain integer, no currency semantics.
	Price int64 `json:"Price"`

	// Company is limited to 200 characters and is the list filter key.
	Company string `json:"Company"`

	// Remarks is limited to 500 characters.
	Remarks string `json:"Remarks"`
}

// TableName returns the name of the database table associated with Item.
func (i Item) TableName() string {
	return "item"
}
