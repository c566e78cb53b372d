// Package workflow drives the target UI through the multi-step record
// creation sequences and reduces each document to a single verdict.
//
// One Automation instance owns one browser session for one document's
// processing. Steps are strictly ordered: every interaction depends on the UI
// state left behind by the previous one, so there is no parallelism inside a
// workflow.
package workflow

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/jonathan/packet-intake/internal/browser"
	"github.com/jonathan/packet-intake/internal/types"
)

const defaultSalutation = "Mr"

// Credentials are the UI login credentials.
type Credentials struct {
	Username string
	Password string
}

// Automation owns one browser session and sequences record-creation
// workflows against it.
type Automation struct {
	drv     browser.Driver
	baseURL string
	creds   Credentials
}

// New creates an Automation bound to one browser session. The caller retains
// responsibility for closing the driver.
func New(drv browser.Driver, baseURL string, creds Credentials) *Automation {
	return &Automation{drv: drv, baseURL: baseURL, creds: creds}
}

// Login signs in to the target UI and verifies the post-login location
// heuristic (a signed-in page mentions dashboard or clients).
func (a *Automation) Login(ctx context.Context) error {
	if err := a.drv.Navigate(ctx, a.baseURL+"/users/sign_in"); err != nil {
		return &LoginError{Message: "could not open sign-in page", Cause: err}
	}
	if err := a.drv.WaitIdle(ctx); err != nil {
		return &LoginError{Message: "sign-in page did not settle", Cause: err}
	}

	if err := a.drv.Fill(ctx, locLoginEmail, a.creds.Username); err != nil {
		return &LoginError{Message: "could not fill email", Cause: err}
	}
	if err := a.drv.Fill(ctx, locLoginPassword, a.creds.Password); err != nil {
		return &LoginError{Message: "could not fill password", Cause: err}
	}
	if err := a.drv.Click(ctx, locLoginSubmit); err != nil {
		return &LoginError{Message: "could not submit sign-in form", Cause: err}
	}
	if err := a.drv.WaitIdle(ctx); err != nil {
		return &LoginError{Message: "post-login page did not settle", Cause: err}
	}

	loc, err := a.drv.Location(ctx)
	if err != nil {
		return &LoginError{Message: "could not read post-login location", Cause: err}
	}
	if !strings.Contains(loc, "dashboard") && !strings.Contains(loc, "clients") {
		return &LoginError{Message: "not redirected to dashboard"}
	}

	log.Printf("[workflow] logged in, landed on %s", loc)
	return nil
}

// ensureLoggedIn checks the current location for a signed-in page and
// performs a single login attempt if not. No further retries.
func (a *Automation) ensureLoggedIn(ctx context.Context) error {
	loc, err := a.drv.Location(ctx)
	if err == nil && (strings.Contains(loc, "dashboard") ||
		strings.Contains(loc, "clients") || strings.Contains(loc, "staff")) {
		return nil
	}
	return a.Login(ctx)
}

// CreateClient creates a client record from the extracted data. Field
// population is best-effort per field: absent fields are skipped, present
// fields must write cleanly. Success is inferred from the post-submit
// location leaving the new-record form.
func (a *Automation) CreateClient(ctx context.Context, rec *types.Record) *types.WorkflowResult {
	if err := a.ensureLoggedIn(ctx); err != nil {
		return &types.WorkflowResult{Error: "Failed to login: " + err.Error()}
	}

	if err := a.openForm(ctx, "/clients/new"); err != nil {
		return &types.WorkflowResult{Error: err.Error()}
	}

	f := &formFiller{ctx: ctx, drv: a.drv}

	f.fill(inputByPlaceholder("Social Security Number"), rec.Personal.SSN)

	if rec.Personal.FullName != "" {
		salutation := rec.Personal.Salutation
		if salutation == "" {
			salutation = defaultSalutation
		}
		f.selectOpt(selectByName("salutation"), salutation)
		f.fill(inputByPlaceholder("First Name"), rec.FirstName())
		f.fill(inputByPlaceholder("Last/Family Name"), rec.LastName())
		f.fill(inputByPlaceholder("Middle Name"), rec.MiddleName())
	}

	f.fill(inputByPlaceholder("Display Name"), rec.DisplayName())
	f.fill(inputByPlaceholder("Preferred Name"), rec.Personal.PreferredName)
	f.selectOpt(selectByPlaceholder("Gender"), rec.Personal.Gender)
	f.fill(inputByPlaceholder("Date Of Birth"), rec.Personal.DateOfBirth)

	f.fill(inputByPlaceholder("Enter Address"), rec.Contact.Address)
	f.fill(inputByPlaceholder("Unit/Apartment No"), rec.Contact.Unit)
	f.fill(inputByPlaceholder("Postal Code"), rec.Contact.PostalCode)
	f.fill(inputByPlaceholder("Mobile Number"), rec.Contact.Phone)
	f.fill(inputByPlaceholder("Phone Number"), rec.Contact.SecondaryPhone)
	f.fill(inputByPlaceholder("Email"), rec.Contact.Email)
	f.fill(inputByPlaceholder("Secondary Email"), rec.Contact.SecondaryEmail)
	f.selectOpt(selectByPlaceholder("Preferred Contact Method"), rec.Contact.PreferredContactMethod)

	f.fill(inputByPlaceholder("Place of Birth"), rec.Personal.PlaceOfBirth)
	f.fill(inputByPlaceholder("Languages"), rec.Personal.Languages)
	f.selectOpt(selectByPlaceholder("Religion"), rec.Personal.Religion)
	f.selectOpt(selectByPlaceholder("Marital Status"), rec.Personal.MaritalStatus)
	f.selectOpt(selectByPlaceholder("Nationality"), rec.Personal.Nationality)
	f.selectOpt(selectByPlaceholder("Ethnicity"), rec.Personal.Ethnicity)

	// New clients are real records, not prospects.
	f.uncheck(inputByName("prospect"))

	if f.err != nil {
		return &types.WorkflowResult{Error: "Error creating client: " + f.err.Error()}
	}

	return a.submitAndVerify(ctx, "client", "/clients/new")
}

// CreateEmployee creates a staff record from the extracted data. The
// onboarding email flag is explicitly cleared so automation never triggers
// notification side effects.
func (a *Automation) CreateEmployee(ctx context.Context, rec *types.Record) *types.WorkflowResult {
	if err := a.ensureLoggedIn(ctx); err != nil {
		return &types.WorkflowResult{Error: "Failed to login: " + err.Error()}
	}

	if err := a.openForm(ctx, "/users/staff/new"); err != nil {
		return &types.WorkflowResult{Error: err.Error()}
	}

	f := &formFiller{ctx: ctx, drv: a.drv}

	if rec.Personal.FullName != "" {
		salutation := rec.Personal.Salutation
		if salutation == "" {
			salutation = defaultSalutation
		}
		f.selectOpt(selectByName("salutation"), salutation)
		f.fill(inputByPlaceholder("First Name"), rec.FirstName())
		f.fill(inputByPlaceholder("Last/Family Name"), rec.LastName())
		f.fill(inputByPlaceholder("Middle Name"), rec.MiddleName())
	}

	f.fill(inputByPlaceholder("Display Name"), rec.DisplayName())
	f.fill(inputByPlaceholder("Email"), rec.Contact.Email)

	// The staff form shows either a mobile or a phone field depending on
	// tenant configuration; try mobile first.
	if rec.Contact.Phone != "" && f.err == nil {
		switch {
		case a.drv.IsVisible(ctx, inputByPlaceholder("Mobile Number")):
			f.fill(inputByPlaceholder("Mobile Number"), rec.Contact.Phone)
		case a.drv.IsVisible(ctx, inputByPlaceholder("Phone Number")):
			f.fill(inputByPlaceholder("Phone Number"), rec.Contact.Phone)
		}
	}

	if f.err == nil && a.drv.IsVisible(ctx, locCaregiverRole) {
		f.check(locCaregiverRole)
	}

	f.selectOpt(selectByPlaceholder("Gender"), rec.Personal.Gender)
	f.fill(inputByPlaceholder("Date Of Birth"), rec.Personal.DateOfBirth)

	employmentType := rec.Employment.EmploymentType
	if employmentType == "" {
		employmentType = "Casual"
	}
	f.selectOpt(selectByName("employment_type"), employmentType)

	f.fill(inputByPlaceholder("Address"), rec.Contact.Address)

	// Suppress the onboarding email so automation runs stay side-effect free.
	f.uncheck(inputByName("onboarding_email"))

	if f.err != nil {
		return &types.WorkflowResult{Error: "Error creating employee: " + f.err.Error()}
	}

	return a.submitAndVerify(ctx, "employee", "/staff/new")
}

// CreateClientWithCarePlan creates the client and then attaches the care
// plan. Client failure short-circuits. A care-plan failure after a
// successful client creation keeps the success verdict and reports the
// care-plan error alongside it; the parent record exists either way.
func (a *Automation) CreateClientWithCarePlan(ctx context.Context, rec *types.Record) *types.WorkflowResult {
	res := a.CreateClient(ctx, rec)
	if res.Failed() {
		return res
	}

	batch, err := a.addCarePlan(ctx, rec)
	if err != nil {
		log.Printf("[workflow] care plan failed after client creation: %v", err)
		res.Message = "Client created but care plan failed"
		res.CarePlanError = err.Error()
		return res
	}

	res.Message = "Client created and care plan added successfully"
	res.Batch = batch
	return res
}

// addCarePlan locates the just-created client in the listing view, opens the
// care plan tab, creates the plan, and applies the goal/task batches.
func (a *Automation) addCarePlan(ctx context.Context, rec *types.Record) (*types.BatchOutcome, error) {
	if err := a.drv.Navigate(ctx, a.baseURL+"/clients"); err != nil {
		return nil, &StepError{Step: "locate client", Message: "could not open client list", Cause: err}
	}
	if err := a.drv.WaitIdle(ctx); err != nil {
		return nil, &StepError{Step: "locate client", Message: "client list did not settle", Cause: err}
	}

	firstName := rec.FirstName()
	lastName := rec.LastName()
	if firstName == "" {
		return nil, &StepError{Step: "locate client", Message: "no client name extracted"}
	}
	if lastName == "" {
		return nil, &StepError{Step: "locate client", Message: "client name must have at least first and last name"}
	}

	// Row match on the first name, falling back to a link match on the full
	// name. Failure here never invalidates the created client.
	target := rowByText(firstName)
	if !a.drv.IsVisible(ctx, target) {
		target = linkByText(firstName + " " + lastName)
		if !a.drv.IsVisible(ctx, target) {
			return nil, &StepError{
				Step:    "locate client",
				Message: fmt.Sprintf("could not find client %s %s in the list", firstName, lastName),
			}
		}
	}

	if err := a.drv.Click(ctx, target); err != nil {
		return nil, &StepError{Step: "open profile", Message: "could not open client profile", Cause: err}
	}
	if err := a.drv.WaitIdle(ctx); err != nil {
		return nil, &StepError{Step: "open profile", Message: "client profile did not settle", Cause: err}
	}

	if !a.drv.IsVisible(ctx, locCarePlanTab) {
		return nil, &StepError{Step: "open care plan", Message: "could not find Care Plan tab"}
	}
	if err := a.clickAndSettle(ctx, locCarePlanTab); err != nil {
		return nil, &StepError{Step: "open care plan", Message: "could not open Care Plan tab", Cause: err}
	}

	if !a.drv.IsVisible(ctx, locAddCarePlan) {
		return nil, &StepError{Step: "open care plan", Message: "could not find Add Care Plan button"}
	}
	if err := a.clickAndSettle(ctx, locAddCarePlan); err != nil {
		return nil, &StepError{Step: "open care plan", Message: "could not open care plan form", Cause: err}
	}

	planName := rec.CarePlan.Name
	if planName == "" {
		planName = "Care Plan Assessment"
	}
	if a.drv.IsVisible(ctx, locCarePlanName) {
		if err := a.drv.Fill(ctx, locCarePlanName, planName); err != nil {
			return nil, &StepError{Step: "fill care plan", Message: "could not fill plan name", Cause: err}
		}
	}
	if rec.CarePlan.StartDate != "" && a.drv.IsVisible(ctx, locCarePlanStart) {
		if err := a.drv.Fill(ctx, locCarePlanStart, rec.CarePlan.StartDate); err != nil {
			return nil, &StepError{Step: "fill care plan", Message: "could not fill start date", Cause: err}
		}
	}
	if rec.CarePlan.EndDate != "" && a.drv.IsVisible(ctx, locCarePlanEnd) {
		if err := a.drv.Fill(ctx, locCarePlanEnd, rec.CarePlan.EndDate); err != nil {
			return nil, &StepError{Step: "fill care plan", Message: "could not fill end date", Cause: err}
		}
	}

	if !a.drv.IsVisible(ctx, locConfirm) {
		return nil, &StepError{Step: "confirm care plan", Message: "could not find Confirm button"}
	}
	if err := a.clickAndSettle(ctx, locConfirm); err != nil {
		return nil, &StepError{Step: "confirm care plan", Message: "could not confirm care plan", Cause: err}
	}

	return a.AddTasksAndGoals(ctx, rec), nil
}

// openForm navigates to a new-record form and waits for it to settle.
func (a *Automation) openForm(ctx context.Context, path string) error {
	if err := a.drv.Navigate(ctx, a.baseURL+path); err != nil {
		return &StepError{Step: "open form", Message: "could not open " + path, Cause: err}
	}
	if err := a.drv.WaitIdle(ctx); err != nil {
		return &StepError{Step: "open form", Message: path + " did not settle", Cause: err}
	}
	return nil
}

// submitAndVerify clicks Create and infers the outcome from the post-submit
// location: leaving the new-record form means success. On failure it reads a
// visible error indicator if one exists, else reports an unknown error.
func (a *Automation) submitAndVerify(ctx context.Context, entity, newPath string) *types.WorkflowResult {
	if err := a.drv.Click(ctx, locCreate); err != nil {
		return &types.WorkflowResult{Error: fmt.Sprintf("Error creating %s: %v", entity, err)}
	}
	if err := a.drv.WaitIdle(ctx); err != nil {
		return &types.WorkflowResult{Error: fmt.Sprintf("Error creating %s: %v", entity, err)}
	}

	loc, err := a.drv.Location(ctx)
	if err != nil {
		return &types.WorkflowResult{Error: fmt.Sprintf("Error creating %s: %v", entity, err)}
	}

	if !strings.Contains(loc, newPath) || strings.Contains(strings.ToLower(loc), "success") {
		log.Printf("[workflow] %s created, landed on %s", entity, loc)
		return &types.WorkflowResult{
			Success: true,
			Message: strings.ToUpper(entity[:1]) + entity[1:] + " created successfully",
		}
	}

	if a.drv.IsVisible(ctx, errorIndicator) {
		if text, err := a.drv.TextContent(ctx, errorIndicator); err == nil && strings.TrimSpace(text) != "" {
			return &types.WorkflowResult{
				Error: fmt.Sprintf("Failed to create %s: %s", entity, strings.TrimSpace(text)),
			}
		}
	}
	return &types.WorkflowResult{Error: fmt.Sprintf("Failed to create %s - unknown error", entity)}
}

// clickAndSettle clicks and waits for the resulting page state.
func (a *Automation) clickAndSettle(ctx context.Context, selector string) error {
	if err := a.drv.Click(ctx, selector); err != nil {
		return err
	}
	return a.drv.WaitIdle(ctx)
}

// formFiller writes optional fields best-effort: absent values are skipped,
// and the first write failure is sticky so later writes become no-ops.
type formFiller struct {
	ctx context.Context
	drv browser.Driver
	err error
}

func (f *formFiller) fill(selector, value string) {
	if f.err != nil || value == "" {
		return
	}
	f.err = f.drv.Fill(f.ctx, selector, value)
}

func (f *formFiller) selectOpt(selector, value string) {
	if f.err != nil || value == "" {
		return
	}
	f.err = f.drv.SelectOption(f.ctx, selector, value)
}

func (f *formFiller) check(selector string) {
	if f.err != nil {
		return
	}
	f.err = f.drv.SetChecked(f.ctx, selector, true)
}

func (f *formFiller) uncheck(selector string) {
	if f.err != nil {
		return
	}
	f.err = f.drv.SetChecked(f.ctx, selector, false)
}
