// Package types provides type definitions for structured data used throughout the packet intake system.
package types

import "strings"

// Record is the canonical intermediate form of one parsed packet document.
// Every optional field is either a non-empty trimmed string or empty (absent);
// extraction never stores a blank-but-present value. RawText is retained
// unmodified for classification and auditing.
type Record struct {
	RawText          string           `json:"raw_text"`
	Personal         PersonalInfo     `json:"personal_info"`
	Contact          ContactInfo      `json:"contact_info"`
	EmergencyContact EmergencyContact `json:"emergency_contact"`
	Medical          MedicalInfo      `json:"medical_info"`
	Employment       EmploymentInfo   `json:"employment_info"`
	CarePlan         CarePlanInfo     `json:"care_plan"`
	Tasks            []CareItem       `json:"tasks"`
	Goals            []CareItem       `json:"goals"`
}

// PersonalInfo holds identity fields recovered from the packet text.
type PersonalInfo struct {
	FullName      string `json:"full_name,omitempty"`
	PreferredName string `json:"preferred_name,omitempty"`
	DateOfBirth   string `json:"date_of_birth,omitempty"`
	SSN           string `json:"ssn,omitempty"`
	Gender        string `json:"gender,omitempty"`
	Salutation    string `json:"salutation,omitempty"`
	PlaceOfBirth  string `json:"place_of_birth,omitempty"`
	Languages     string `json:"languages,omitempty"`
	Religion      string `json:"religion,omitempty"`
	MaritalStatus string `json:"marital_status,omitempty"`
	Nationality   string `json:"nationality,omitempty"`
	Ethnicity     string `json:"ethnicity,omitempty"`
}

// ContactInfo holds contact fields recovered from the packet text.
type ContactInfo struct {
	Phone                  string `json:"phone,omitempty"`
	SecondaryPhone         string `json:"secondary_phone,omitempty"`
	Email                  string `json:"email,omitempty"`
	SecondaryEmail         string `json:"secondary_email,omitempty"`
	Address                string `json:"address,omitempty"`
	Unit                   string `json:"unit_apartment,omitempty"`
	PostalCode             string `json:"postal_code,omitempty"`
	PreferredContactMethod string `json:"preferred_contact_method,omitempty"`
}

// EmergencyContact holds the emergency contact name and phone.
type EmergencyContact struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// MedicalInfo holds medical conditions and medications.
type MedicalInfo struct {
	Conditions  string `json:"conditions,omitempty"`
	Medications string `json:"medications,omitempty"`
}

// EmploymentInfo holds employment fields. EmploymentType always resolves to a
// non-empty value via the extraction defaulting policy; it is never absent.
type EmploymentInfo struct {
	Position       string `json:"position,omitempty"`
	Department     string `json:"department,omitempty"`
	EmploymentType string `json:"employment_type"`
}

// CarePlanInfo holds the care plan name and validity window.
type CarePlanInfo struct {
	Name      string `json:"name,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

// CareItem is one task or goal entry. The sequence order is discovery order
// across extraction passes and may contain duplicates.
type CareItem struct {
	Description string `json:"description"`
}

// nameParts splits the full name into whitespace-separated tokens.
func (r *Record) nameParts() []string {
	return strings.Fields(strings.TrimSpace(r.Personal.FullName))
}

// FirstName returns the first token of the full name, or "" if no name was extracted.
func (r *Record) FirstName() string {
	parts := r.nameParts()
	if len(parts) == 0 {
		return ""
	}
	return parts[0]
}

// LastName returns the last token of the full name, or "" if the name has
// fewer than two tokens.
func (r *Record) LastName() string {
	parts := r.nameParts()
	if len(parts) < 2 {
		return ""
	}
	return parts[len(parts)-1]
}

// MiddleName returns the tokens between the first and last name joined by
// spaces, or "" if the name has fewer than three tokens.
func (r *Record) MiddleName() string {
	parts := r.nameParts()
	if len(parts) < 3 {
		return ""
	}
	return strings.Join(parts[1:len(parts)-1], " ")
}

// DisplayName returns the name shown in the target UI. The first token of the
// full name is used when no explicit display name exists.
func (r *Record) DisplayName() string {
	return r.FirstName()
}
