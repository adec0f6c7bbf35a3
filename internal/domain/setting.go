package domain

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"overstay/pkg/e"
	"overstay/pkg/validator"
)

const AllowedMinutesField = "allowedMinutes"

const (
	msgRequired   = "is required"
	msgNotInteger = "must be an integer"
	msgOutOfRange = "must be a number between 0 and 180"
	msgBadBody    = "request body must be a JSON object"
)

// AllowedMinutesSetting is the stored allowance. A nil *AllowedMinutesSetting
// means nothing has been configured yet, which is not the same as zero.
type AllowedMinutesSetting struct {
	Minutes   int       `json:"allowed_minutes"`
	Revision  uuid.UUID `json:"revision"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewAllowedMinutesSetting(minutes int, now time.Time) AllowedMinutesSetting {
	return AllowedMinutesSetting{
		Minutes:   minutes,
		Revision:  uuid.New(),
		UpdatedAt: now.UTC(),
	}
}

// DurationSetupRequest is the body of POST /duration. AllowedMinutes is
// decoded with json.Decoder.UseNumber so numbers arrive as json.Number.
type DurationSetupRequest struct {
	Config *DurationSetupConfig `json:"config"`
}

type DurationSetupConfig struct {
	AllowedMinutes any `json:"allowedMinutes"`
}

func (r DurationSetupRequest) Value() any {
	if r.Config == nil {
		return nil
	}
	return r.Config.AllowedMinutes
}

type allowedMinutesInput struct {
	Minutes int `validate:"allowed_minutes"`
}

// ParseAllowedMinutes coerces a raw request value and checks the 0..180 range.
func ParseAllowedMinutes(v any) (int, error) {
	n, err := coerceInt(v)
	if err != nil {
		return 0, err
	}
	if err := validator.ValidateStruct(allowedMinutesInput{Minutes: n}); err != nil {
		return 0, e.NewValidationError(AllowedMinutesField, msgOutOfRange)
	}
	return n, nil
}

func InvalidBodyError() *e.ValidationError {
	return e.NewValidationError(AllowedMinutesField, msgBadBody)
}

func coerceInt(v any) (int, error) {
	switch x := v.(type) {
	case nil:
		return 0, e.NewValidationError(AllowedMinutesField, msgRequired)
	case int:
		return x, nil
	case int64:
		return fromFloat(float64(x))
	case float64:
		return fromFloat(x)
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return fromFloat(float64(i))
		}
		f, err := x.Float64()
		if err != nil {
			return 0, e.NewValidationError(AllowedMinutesField, msgNotInteger)
		}
		return fromFloat(f)
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, e.NewValidationError(AllowedMinutesField, msgRequired)
		}
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
				return 0, e.NewValidationError(AllowedMinutesField, msgOutOfRange)
			}
			return 0, e.NewValidationError(AllowedMinutesField, msgNotInteger)
		}
		return fromFloat(float64(i))
	default:
		return 0, e.NewValidationError(AllowedMinutesField, msgNotInteger)
	}
}

// fromFloat rejects fractions; magnitudes far outside the range are
// reported as a range error rather than overflowing int.
func fromFloat(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, e.NewValidationError(AllowedMinutesField, msgNotInteger)
	}
	if math.Abs(f) > 1e9 {
		return 0, e.NewValidationError(AllowedMinutesField, msgOutOfRange)
	}
	return int(f), nil
}
