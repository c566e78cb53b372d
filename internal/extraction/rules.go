// Package extraction recovers structured packet data from free-form document text.
//
// Each semantic field has an ordered chain of pattern rules, most common label
// first. Rules are applied first-match: once a rule in a chain succeeds, later
// rules for the same field are never consulted. A rule that matches captures
// one bounded group, trimmed of surrounding whitespace. No match leaves the
// field absent; extraction never fails.
package extraction

import (
	"regexp"
	"strings"
)

// Rule is one ordered pattern used to recover a field value from text.
type Rule struct {
	re *regexp.Regexp
}

// newRule compiles a case-insensitive extraction rule. The expression must
// contain exactly one capture group.
func newRule(expr string) Rule {
	return Rule{re: regexp.MustCompile(`(?i)` + expr)}
}

// Apply returns the trimmed first capture group and true when the rule
// matches, or "" and false otherwise.
func (r Rule) Apply(text string) (string, bool) {
	m := r.re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	value := strings.TrimSpace(m[1])
	if value == "" {
		return "", false
	}
	return value, true
}

// ApplyAll returns the trimmed captures of every match in document order.
func (r Rule) ApplyAll(text string) []string {
	var values []string
	for _, m := range r.re.FindAllStringSubmatch(text, -1) {
		if v := strings.TrimSpace(m[1]); v != "" {
			values = append(values, v)
		}
	}
	return values
}

// firstMatch applies rules in order and returns the first successful capture,
// or "" when no rule matches.
func firstMatch(text string, rules []Rule) string {
	for _, r := range rules {
		if v, ok := r.Apply(text); ok {
			return v
		}
	}
	return ""
}

// Label-and-value captures are line-bounded: a value never crosses a newline.
const (
	lineValue  = `[:\s]+([^\n]+)`
	dateValue  = `[:\s]+(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`
	phoneValue = `[:\s]+(\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4})`
	emailValue = `[:\s]+([a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,})`
	// nameValue strips a leading salutation so "Mr. John Smith" captures
	// "John Smith"; the title itself is recovered by the salutation chain.
	nameValue = `[:\s]+(?:(?:Mr|Mrs|Ms|Dr|Prof)\.?\s+)?([A-Za-z][A-Za-z ,'-]*)`
)

var (
	fullNameRules = []Rule{
		newRule(`Name` + nameValue),
		newRule(`Full Name` + nameValue),
		newRule(`Client Name` + nameValue),
		newRule(`Employee Name` + nameValue),
		newRule(`Patient Name` + nameValue),
	}

	preferredNameRules = []Rule{
		newRule(`Preferred Name` + nameValue),
		newRule(`Nickname` + nameValue),
		newRule(`Goes By` + nameValue),
	}

	dobRules = []Rule{
		newRule(`Date of Birth` + dateValue),
		newRule(`DOB` + dateValue),
		newRule(`Birth Date` + dateValue),
		newRule(`Born` + dateValue),
	}

	ssnRules = []Rule{
		newRule(`SSN[:\s]+(\d{3}-?\d{2}-?\d{4})`),
	}

	genderRules = []Rule{
		newRule(`Gender[:\s]+(Male|Female|Other)`),
		newRule(`Sex[:\s]+(Male|Female|Other)`),
		newRule(`Gender[:\s]+(M|F)\b`),
		newRule(`Sex[:\s]+(M|F)\b`),
	}

	salutationRules = []Rule{
		newRule(`\b(Mr|Mrs|Ms|Dr|Prof)\.?\s+[A-Za-z]`),
		newRule(`Title[:\s]+(Mr|Mrs|Ms|Dr|Prof)\b`),
		newRule(`Salutation[:\s]+(Mr|Mrs|Ms|Dr|Prof)\b`),
	}

	placeOfBirthRules = []Rule{
		newRule(`Place of Birth` + lineValue),
		newRule(`Born in` + lineValue),
		newRule(`Birth Place` + lineValue),
	}

	languagesRules = []Rule{
		newRule(`Languages` + lineValue),
		newRule(`Language` + lineValue),
		newRule(`Speaks` + lineValue),
	}

	religionRules = []Rule{
		newRule(`Religion` + lineValue),
		newRule(`Faith` + lineValue),
		newRule(`Religious Affiliation` + lineValue),
	}

	maritalStatusRules = []Rule{
		newRule(`Marital Status[:\s]+(Single|Married|Divorced|Widowed|Separated)`),
		newRule(`Status[:\s]+(Single|Married|Divorced|Widowed|Separated)`),
	}

	nationalityRules = []Rule{
		newRule(`Nationality` + lineValue),
		newRule(`Citizenship` + lineValue),
		newRule(`Country of Origin` + lineValue),
	}

	ethnicityRules = []Rule{
		newRule(`Ethnicity` + lineValue),
		newRule(`Ethnic Background` + lineValue),
		newRule(`Race` + lineValue),
	}

	phoneRules = []Rule{
		newRule(`Phone` + phoneValue),
		newRule(`Mobile` + phoneValue),
		newRule(`Cell` + phoneValue),
		newRule(`Primary Phone` + phoneValue),
	}

	secondaryPhoneRules = []Rule{
		newRule(`Secondary Phone` + phoneValue),
		newRule(`Home Phone` + phoneValue),
		newRule(`Work Phone` + phoneValue),
	}

	emailRules = []Rule{
		newRule(`Email` + emailValue),
		newRule(`Primary Email` + emailValue),
		newRule(`E-mail` + emailValue),
	}

	secondaryEmailRules = []Rule{
		newRule(`Secondary Email` + emailValue),
	}

	addressRules = []Rule{
		newRule(`Address` + lineValue),
		newRule(`Street Address` + lineValue),
		newRule(`Home Address` + lineValue),
		newRule(`Primary Address` + lineValue),
	}

	unitRules = []Rule{
		newRule(`Unit` + lineValue),
		newRule(`Apartment` + lineValue),
		newRule(`Apt` + lineValue),
		newRule(`Suite` + lineValue),
	}

	postalCodeRules = []Rule{
		newRule(`Postal Code` + lineValue),
		newRule(`Zip Code` + lineValue),
		newRule(`ZIP` + lineValue),
		newRule(`Postcode` + lineValue),
	}

	contactMethodRules = []Rule{
		newRule(`Preferred Contact[:\s]+(Phone|Email|Text|SMS|Mail)`),
		newRule(`Contact Method[:\s]+(Phone|Email|Text|SMS|Mail)`),
		newRule(`Best Way to Contact[:\s]+(Phone|Email|Text|SMS|Mail)`),
	}

	emergencyNameRules = []Rule{
		newRule(`Emergency Contact` + nameValue),
	}

	emergencyPhoneRules = []Rule{
		newRule(`Emergency Phone` + phoneValue),
	}

	conditionsRules = []Rule{
		newRule(`Medical Conditions` + lineValue),
	}

	medicationsRules = []Rule{
		newRule(`Medications` + lineValue),
	}

	positionRules = []Rule{
		newRule(`Position` + lineValue),
		newRule(`Title` + lineValue),
		newRule(`Job Title` + lineValue),
		newRule(`Role` + lineValue),
	}

	departmentRules = []Rule{
		newRule(`Department` + lineValue),
	}

	employmentTypeRules = []Rule{
		newRule(`Employment Type[:\s]+(Full-time|Part-time|Casual|Contract|Temporary)`),
		newRule(`Type[:\s]+(Full-time|Part-time|Casual|Contract|Temporary)`),
		newRule(`Status[:\s]+(Full-time|Part-time|Casual|Contract|Temporary)`),
	}

	carePlanNameRules = []Rule{
		newRule(`Care Plan` + lineValue),
		newRule(`Plan Name` + lineValue),
		newRule(`Assessment` + lineValue),
		newRule(`Treatment Plan` + lineValue),
	}

	carePlanStartRules = []Rule{
		newRule(`Start Date` + dateValue),
		newRule(`Plan Start` + dateValue),
		newRule(`Effective Date` + dateValue),
	}

	carePlanEndRules = []Rule{
		newRule(`End Date` + dateValue),
		newRule(`Plan End` + dateValue),
		newRule(`Review Date` + dateValue),
	}
)
