package models

// OperatorProfile is the station identity used as "my station" context for a QSO
type OperatorProfile struct {
	ID int64 `json:"id"`
	ProfileAttributes
}

// ProfileAttributes holds the free-text fields of an operator profile.
// Updates always replace all of them at once.
type ProfileAttributes struct {
	Name string `json:"name"`
	Call string `json:"call"`
	Grid string `json:"grid"`
	CQZ  string `json:"cqz"`
	ITUZ string `json:"ituz"`
	DXCC string `json:"dxcc"`
	Cont string `json:"cont"`
}

// PlaceholderProfileName is the name given to freshly created profiles
const PlaceholderProfileName = "New Profile"

// PlaceholderAttributes returns the attributes a new profile starts with
func PlaceholderAttributes() ProfileAttributes {
	return ProfileAttributes{Name: PlaceholderProfileName}
}

// Label returns "name (call)", or just the name when no callsign is set
func (p *OperatorProfile) Label() string {
	if p.Call == "" {
		return p.Name
	}
	return p.Name + " (" + p.Call + ")"
}
