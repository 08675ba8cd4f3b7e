package vault

import (
	"bytes"
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"time"

	"github.com/go-openapi/strfmt"
)

// DurationFormat is the name the Vault duration format is registered
// under in [strfmt.Default].
const DurationFormat = "vault-duration"

// durationPattern accepts the groups in fixed day, hour, minute, second
// order. The unit letter is optional only on the trailing seconds group.
var durationPattern = regexp.MustCompile(`^(?:(\d+)d)?(?:(\d+)h)?(?:(\d+)m)?(?:(\d+)s?)?$`)

var durationUnits = [...]time.Duration{24 * time.Hour, time.Hour, time.Minute, time.Second}

func init() {
	strfmt.Default.Add(DurationFormat, new(Duration), IsDuration)
}

// Duration is an elapsed time as exchanged with Vault.
//
// It is written as whole seconds ("90s"); any sub-second remainder is
// truncated. It is read from either a string such as "1d2h3m4s", "5m" or
// "90", or a JSON integer number of seconds, which is how the server
// reports TTLs in read responses.
type Duration time.Duration

// Seconds builds a Duration of n whole seconds.
func Seconds(n int64) Duration {
	return Duration(time.Duration(n) * time.Second)
}

// Std returns d as a [time.Duration].
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// String returns the wire form of d.
func (d Duration) String() string {
	return FormatDuration(d.Std())
}

// MarshalText implements [encoding.TextMarshaler].
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalJSON writes d as a JSON string.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON reads a duration string or an integer number of seconds.
func (d *Duration) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		return d.UnmarshalText([]byte(s))
	}
	return d.UnmarshalText(data)
}

// FormatDuration encodes d as "<seconds>s", truncating toward zero.
func FormatDuration(d time.Duration) string {
	return strconv.FormatInt(int64(d/time.Second), 10) + "s"
}

// ParseDuration decodes the Vault duration format.
//
// The accepted form is up to four groups, each at most once and in this
// order: days ("d"), hours ("h"), minutes ("m") and seconds ("s"). The
// final seconds group may omit its unit, so a bare number is a count of
// seconds. The empty string is zero.
//
//	ParseDuration("1m30s") // 90s
//	ParseDuration("90")    // 90s
//	ParseDuration("1h1d")  // error: hours before days
func ParseDuration(text string) (time.Duration, error) {
	groups := durationPattern.FindStringSubmatch(text)
	if groups == nil {
		return 0, durationError(text, nil)
	}

	var total time.Duration
	for i, digits := range groups[1:] {
		if digits == "" {
			continue
		}
		n, err := strconv.ParseInt(digits, 10, 64)
		if err != nil {
			return 0, durationError(text, err)
		}
		unit := durationUnits[i]
		if n > int64(math.MaxInt64/unit) {
			return 0, durationError(text, strconv.ErrRange)
		}
		part := time.Duration(n) * unit
		if total > math.MaxInt64-part {
			return 0, durationError(text, strconv.ErrRange)
		}
		total += part
	}
	return total, nil
}

// IsDuration reports whether text is a valid Vault duration.
func IsDuration(text string) bool {
	_, err := ParseDuration(text)
	return err == nil
}
