package registry

import "fmt"

// Band is an inclusive range of codes owned by one subsystem.
type Band struct {
	Name string `json:"name" yaml:"name"`
	Low  int    `json:"low" yaml:"low"`
	High int    `json:"high" yaml:"high"`
}

// Contains reports whether code falls within the band.
func (b Band) Contains(code int) bool {
	return code >= b.Low && code <= b.High
}

// Overlaps reports whether the two bands share at least one code.
func (b Band) Overlaps(o Band) bool {
	return b.Low <= o.High && o.Low <= b.High
}

// String returns "name [low-high]".
func (b Band) String() string {
	return fmt.Sprintf("%s [%d-%d]", b.Name, b.Low, b.High)
}

// Band names of [DefaultBands].
const (
	BandStorage  = "storage"
	BandIO       = "io"
	BandDocument = "document"
	BandQuery    = "query"
	BandCursor   = "cursor"
)

// DefaultBands is the band layout of the builtin table. Codes between
// bands are reserved for subsystems not yet catalogued; a new band must
// not overlap an existing one.
var DefaultBands = []Band{
	{Name: BandStorage, Low: 1000, High: 1099},
	{Name: BandIO, Low: 1100, High: 1199},
	{Name: BandDocument, Low: 1200, High: 1299},
	{Name: BandQuery, Low: 1500, High: 1599},
	{Name: BandCursor, Low: 1600, High: 1699},
}

// BandOf returns the first band in bands that contains code.
func BandOf(code int, bands []Band) (Band, bool) {
	for _, b := range bands {
		if b.Contains(code) {
			return b, true
		}
	}
	return Band{}, false
}

// LookupBand returns the band named name.
func LookupBand(name string, bands []Band) (Band, bool) {
	for _, b := range bands {
		if b.Name == name {
			return b, true
		}
	}
	return Band{}, false
}
