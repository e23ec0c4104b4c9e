package phone

import (
	"fmt"

	"github.com/nyaruka/phonenumbers"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// libParser backs Parser with the embedded libphonenumber metadata.
type libParser struct{}

// NewParser returns the production Parser.
func NewParser() Parser {
	return libParser{}
}

func (libParser) Parse(raw, region string) (ParsedNumber, error) {
	num, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return ParsedNumber{}, fmt.Errorf("%w: %v", ErrParseFailed, err)
	}

	out := ParsedNumber{
		Canonical:   phonenumbers.Format(num, phonenumbers.E164),
		CountryCode: fmt.Sprintf("+%d", num.GetCountryCode()),
		CountryName: regionDisplayName(phonenumbers.GetRegionCodeForNumber(num)),
		NumberType:  numberTypeName(phonenumbers.GetNumberType(num)),
		IsValid:     phonenumbers.IsValidNumber(num),
	}
	if carrier, err := phonenumbers.GetCarrierForNumber(num, "en"); err == nil {
		out.Carrier = carrier
	}
	return out, nil
}

// regionDisplayName renders an ISO region as an English country name,
// falling back to the region code itself.
func regionDisplayName(region string) string {
	if region == "" || region == "ZZ" {
		return ""
	}
	r, err := language.ParseRegion(region)
	if err != nil {
		return region
	}
	if name := display.English.Regions().Name(r); name != "" {
		return name
	}
	return region
}

func numberTypeName(t phonenumbers.PhoneNumberType) string {
	switch t {
	case phonenumbers.FIXED_LINE:
		return "FIXED_LINE"
	case phonenumbers.MOBILE:
		return "MOBILE"
	case phonenumbers.FIXED_LINE_OR_MOBILE:
		return "FIXED_LINE_OR_MOBILE"
	case phonenumbers.TOLL_FREE:
		return "TOLL_FREE"
	case phonenumbers.PREMIUM_RATE:
		return "PREMIUM_RATE"
	case phonenumbers.SHARED_COST:
		return "SHARED_COST"
	case phonenumbers.VOIP:
		return "VOIP"
	case phonenumbers.PERSONAL_NUMBER:
		return "PERSONAL_NUMBER"
	case phonenumbers.PAGER:
		return "PAGER"
	case phonenumbers.UAN:
		return "UAN"
	case phonenumbers.VOICEMAIL:
		return "VOICEMAIL"
	default:
		return "UNKNOWN"
	}
}
