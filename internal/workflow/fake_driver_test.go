package workflow

import (
	"context"
	"fmt"
)

// fakeDriver is an in-memory Driver for workflow tests. Navigation updates
// the reported location; click behavior is scripted through onClick.
type fakeDriver struct {
	location       string
	visible        map[string]bool
	visibleDefault bool
	texts          map[string]string

	fills   map[string]string
	selects map[string]string
	checked map[string]bool
	clicks  []string

	fillErr  error
	clickErr func(selector string) error
	onClick  func(d *fakeDriver, selector string)

	closed int
}

func newFakeDriver(location string) *fakeDriver {
	return &fakeDriver{
		location: location,
		visible:  map[string]bool{},
		texts:    map[string]string{},
		fills:    map[string]string{},
		selects:  map[string]string{},
		checked:  map[string]bool{},
	}
}

func (d *fakeDriver) Navigate(_ context.Context, url string) error {
	d.location = url
	return nil
}

func (d *fakeDriver) WaitIdle(_ context.Context) error { return nil }

func (d *fakeDriver) Fill(_ context.Context, selector, value string) error {
	if d.fillErr != nil {
		return d.fillErr
	}
	d.fills[selector] = value
	return nil
}

func (d *fakeDriver) Click(_ context.Context, selector string) error {
	d.clicks = append(d.clicks, selector)
	if d.clickErr != nil {
		if err := d.clickErr(selector); err != nil {
			return err
		}
	}
	if d.onClick != nil {
		d.onClick(d, selector)
	}
	return nil
}

func (d *fakeDriver) SelectOption(_ context.Context, selector, value string) error {
	d.selects[selector] = value
	return nil
}

func (d *fakeDriver) SetChecked(_ context.Context, selector string, checked bool) error {
	d.checked[selector] = checked
	return nil
}

func (d *fakeDriver) IsVisible(_ context.Context, selector string) bool {
	if v, ok := d.visible[selector]; ok {
		return v
	}
	return d.visibleDefault
}

func (d *fakeDriver) TextContent(_ context.Context, selector string) (string, error) {
	if text, ok := d.texts[selector]; ok {
		return text, nil
	}
	return "", fmt.Errorf("no text for %s", selector)
}

func (d *fakeDriver) Location(_ context.Context) (string, error) {
	return d.location, nil
}

func (d *fakeDriver) Close() error {
	d.closed++
	return nil
}

// clickCount returns how many times the selector was clicked.
func (d *fakeDriver) clickCount(selector string) int {
	n := 0
	for _, c := range d.clicks {
		if c == selector {
			n++
		}
	}
	return n
}
