package workflow

import "fmt"

// Locator constructors for the target UI. Field inputs are addressed by
// placeholder text, flags by name attribute, and buttons/links/rows by
// visible text (XPath, handled by the driver's "//" convention). These
// semantics must stay stable for compatibility with the target forms.

func inputByPlaceholder(placeholder string) string {
	return fmt.Sprintf(`input[placeholder*=%q]`, placeholder)
}

func selectByPlaceholder(placeholder string) string {
	return fmt.Sprintf(`select[placeholder*=%q]`, placeholder)
}

func selectByName(name string) string {
	return fmt.Sprintf(`select[name*=%q]`, name)
}

func inputByName(name string) string {
	return fmt.Sprintf(`input[name*=%q]`, name)
}

func buttonByText(text string) string {
	return fmt.Sprintf(`//button[contains(., %q)]`, text)
}

func linkByText(text string) string {
	return fmt.Sprintf(`//a[contains(., %q)]`, text)
}

func rowByText(text string) string {
	return fmt.Sprintf(`//tr[contains(., %q)]`, text)
}

const (
	locLoginEmail    = `input[name="user[email]"]`
	locLoginPassword = `input[name="user[password]"]`
	locLoginSubmit   = `input[type="submit"]`

	// errorIndicator is the best-effort selector for visible form errors;
	// the UI exposes no structured failure signal.
	errorIndicator = `.error, .alert-danger, [class*="error"]`

	locCaregiverRole = `input[value="Caregiver"]`

	locCarePlanName  = `input[placeholder*="Care plan assessment"]`
	locCarePlanStart = `input[name*="start_date"]`
	locCarePlanEnd   = `input[name*="end_date"]`

	// locItemField is the input surface of a freshly opened goal/task form.
	locItemField   = `textarea, input[type="text"]`
	locItemSave    = `//button[contains(., "Save") or contains(., "Add")]`
	locFirstGoal   = `//button[contains(., "Add First Goal")]`
	locFirstTask   = `//button[contains(., "Add First Task")]`
	locAddCarePlan = `//button[contains(., "Add Care Plan")]`
	locCarePlanTab = `//a[contains(., "Care Plan")]`
	locConfirm     = `//button[contains(., "Confirm")]`
	locCreate      = `//button[contains(., "Create")]`
)
