package sapgui

// statusBarName is the fixed name of the status bar on every SAP window.
const statusBarName = "sbar"

// Find resolves a control by name and expected kind, asserting it to the
// requested capability interface. Both a missing name and a kind mismatch
// yield a ControlNotFoundError; higher layers must treat every resolution
// as fallible because the host invalidates names across scrolls and
// screen transitions.
func Find[T Control](window Window, name string, kind ControlKind) (T, error) {
	var zero T

	control, err := window.FindControl(name)
	if err != nil {
		return zero, &ControlNotFoundError{Name: name, Kind: kind, Err: err}
	}
	if control.Kind() != kind {
		return zero, &ControlNotFoundError{Name: name, Kind: kind}
	}
	typed, ok := control.(T)
	if !ok {
		return zero, &ControlNotFoundError{Name: name, Kind: kind}
	}
	return typed, nil
}

// TextOf reads a plain text field.
func TextOf(window Window, name string) (string, error) {
	field, err := Find[TextControl](window, name, KindTextField)
	if err != nil {
		return "", err
	}
	return field.Text()
}

// CTextOf reads a code text field.
func CTextOf(window Window, name string) (string, error) {
	field, err := Find[TextControl](window, name, KindCTextField)
	if err != nil {
		return "", err
	}
	return field.Text()
}

// SetCText writes a code text field.
func SetCText(window Window, name, value string) error {
	field, err := Find[TextControl](window, name, KindCTextField)
	if err != nil {
		return err
	}
	return field.SetText(value)
}

// KeyOf reads the selected key of a combo box.
func KeyOf(window Window, name string) (string, error) {
	combo, err := Find[ComboControl](window, name, KindComboBox)
	if err != nil {
		return "", err
	}
	return combo.Key()
}

// StatusText reads the status-bar message, or empty when the bar cannot be
// read. Diagnostics only; never a reason to fail an operation on its own.
func StatusText(window Window) string {
	bar, err := Find[StatusBarControl](window, statusBarName, KindStatusBar)
	if err != nil {
		return ""
	}
	msg, err := bar.Message()
	if err != nil {
		return ""
	}
	return msg
}
