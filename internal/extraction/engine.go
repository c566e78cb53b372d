package extraction

import (
	"strings"

	"github.com/jonathan/packet-intake/internal/types"
)

// Extract recovers a structured Record from free-form packet text. It never
// fails: fields whose rule chains find no match are simply left absent. The
// raw text is retained unmodified on the returned record.
func Extract(text string) *types.Record {
	rec := &types.Record{RawText: text}

	rec.Personal = types.PersonalInfo{
		FullName:      firstMatch(text, fullNameRules),
		PreferredName: firstMatch(text, preferredNameRules),
		DateOfBirth:   firstMatch(text, dobRules),
		SSN:           firstMatch(text, ssnRules),
		Gender:        normalizeGender(firstMatch(text, genderRules)),
		Salutation:    firstMatch(text, salutationRules),
		PlaceOfBirth:  firstMatch(text, placeOfBirthRules),
		Languages:     firstMatch(text, languagesRules),
		Religion:      firstMatch(text, religionRules),
		MaritalStatus: firstMatch(text, maritalStatusRules),
		Nationality:   firstMatch(text, nationalityRules),
		Ethnicity:     firstMatch(text, ethnicityRules),
	}

	rec.Contact = types.ContactInfo{
		Phone:                  firstMatch(text, phoneRules),
		SecondaryPhone:         firstMatch(text, secondaryPhoneRules),
		Email:                  firstMatch(text, emailRules),
		SecondaryEmail:         firstMatch(text, secondaryEmailRules),
		Address:                firstMatch(text, addressRules),
		Unit:                   firstMatch(text, unitRules),
		PostalCode:             firstMatch(text, postalCodeRules),
		PreferredContactMethod: firstMatch(text, contactMethodRules),
	}

	rec.EmergencyContact = types.EmergencyContact{
		Name:  firstMatch(text, emergencyNameRules),
		Phone: firstMatch(text, emergencyPhoneRules),
	}

	rec.Medical = types.MedicalInfo{
		Conditions:  firstMatch(text, conditionsRules),
		Medications: firstMatch(text, medicationsRules),
	}

	rec.Employment = types.EmploymentInfo{
		Position:       firstMatch(text, positionRules),
		Department:     firstMatch(text, departmentRules),
		EmploymentType: resolveEmploymentType(text),
	}

	rec.CarePlan = types.CarePlanInfo{
		Name:      firstMatch(text, carePlanNameRules),
		StartDate: firstMatch(text, carePlanStartRules),
		EndDate:   firstMatch(text, carePlanEndRules),
	}

	rec.Tasks = extractTasks(text)
	rec.Goals = extractGoals(text)

	return rec
}

// normalizeGender expands a bare M/F capture to the full word; any other
// captured value passes through unchanged.
func normalizeGender(gender string) string {
	switch strings.ToUpper(gender) {
	case "M":
		return "Male"
	case "F":
		return "Female"
	default:
		return gender
	}
}

// resolveEmploymentType finds an explicit employment type, falling back to a
// substring scan of the whole text. The scan order is fixed: casual, then
// part-time, then full-time. The field is never absent; the final default is
// Casual.
func resolveEmploymentType(text string) string {
	if v := firstMatch(text, employmentTypeRules); v != "" {
		return v
	}

	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "casual"):
		return "Casual"
	case strings.Contains(lower, "part-time"), strings.Contains(lower, "part time"):
		return "Part-time"
	case strings.Contains(lower, "full-time"), strings.Contains(lower, "full time"):
		return "Full-time"
	default:
		return "Casual"
	}
}
