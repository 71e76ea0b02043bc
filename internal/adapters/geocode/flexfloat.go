package geocode

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// flexFloat accepts coordinate fields encoded either as JSON numbers or as
// numeric strings (Nominatim delivers lat/lon as strings).
type flexFloat struct {
	value float64
	set   bool
}

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}

	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		s = strings.TrimSpace(str)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("parse coordinate field %q: %w", s, err)
	}

	f.value = v
	f.set = true
	return nil
}
