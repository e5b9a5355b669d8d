package tui

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/leafco2/internal/logging"
	"github.com/rshade/leafco2/internal/stomata"
)

// FormState represents the current state of the form TUI.
type FormState int

const (
	// FormStateEditing indicates the user is filling in fields.
	FormStateEditing FormState = iota
	// FormStateShowingResult indicates a successful estimate is displayed.
	FormStateShowingResult
	// FormStateShowingFailure indicates a validation failure is displayed.
	FormStateShowingFailure
	// FormStateQuitting indicates the application is exiting.
	FormStateQuitting
)

type fieldKind int

const (
	fieldSelect fieldKind = iota
	fieldText
	fieldInteger
)

// Field indexes in display order.
const (
	FieldLeafType = iota
	FieldWidth
	FieldHeight
	FieldNumLeaves
	FieldAreaUnit
	FieldCO2Unit
	FieldPeopleCount
)

const (
	formDefaultWidth = 80
	inputCharLimit   = 32
	inputWidth       = 20
	integerMin       = 1
)

// FormDefaults seeds the form's initial values.
type FormDefaults struct {
	LeafType    string
	Width       string
	Height      string
	NumLeaves   int
	AreaUnit    string
	CO2Unit     string
	PeopleCount int
}

type formField struct {
	label    string
	kind     fieldKind
	options  []string
	selected int
	input    textinput.Model
}

func (f *formField) value() string {
	if f.kind == fieldSelect {
		if len(f.options) == 0 {
			return ""
		}
		return f.options[f.selected]
	}
	return f.input.Value()
}

// EstimateFunc computes an estimate from raw form input.
type EstimateFunc func(context.Context, stomata.RawInput) (stomata.Result, error)

// FormModel is the Bubble Tea model for the interactive leaf calculator.
type FormModel struct {
	ctx    context.Context
	fields []formField
	focus  int

	state   FormState
	result  stomata.Result
	failure string

	notComputable string
	useKorean     bool
	width         int

	estimateFn EstimateFunc
}

// NewFormModel creates a FormModel seeded with defaults.
//
// notComputable labels a leaves-needed value without a count; useKorean
// selects Korean failure reasons.
func NewFormModel(ctx context.Context, defaults FormDefaults, notComputable string, useKorean bool) *FormModel {
	m := &FormModel{
		ctx:           ctx,
		state:         FormStateEditing,
		notComputable: notComputable,
		useKorean:     useKorean,
		width:         formDefaultWidth,
		estimateFn:    stomata.EstimateWithContext,
	}

	m.fields = []formField{
		m.newSelectField("잎 종류 선택", stomata.SpeciesNames(), defaults.LeafType),
		newTextField("잎 가로 길이 (cm)", fieldText, defaults.Width),
		newTextField("잎 세로 길이 (cm)", fieldText, defaults.Height),
		newTextField("잎 개수", fieldInteger, strconv.Itoa(max(defaults.NumLeaves, integerMin))),
		m.newSelectField("면적 단위 선택", unitLabels(stomata.AreaUnits()), defaults.AreaUnit),
		m.newSelectField("CO₂ 흡수 단위 선택", unitLabels(stomata.CO2Units()), defaults.CO2Unit),
		newTextField("사람 수", fieldInteger, strconv.Itoa(max(defaults.PeopleCount, integerMin))),
	}

	return m
}

// WithEstimateFunc replaces the estimator, for tests.
func (m *FormModel) WithEstimateFunc(fn EstimateFunc) *FormModel {
	m.estimateFn = fn
	return m
}

// newSelectField preselects current. An empty or unknown current selects the
// first option; unknown values are logged as a warning.
func (m *FormModel) newSelectField(label string, options []string, current string) formField {
	f := formField{label: label, kind: fieldSelect, options: options}
	for i, o := range options {
		if o == current {
			f.selected = i
			return f
		}
	}
	if current != "" && len(options) > 0 {
		logger := logging.ComponentLogger(*logging.FromContext(m.ctx), "tui")
		logger.Warn().
			Ctx(m.ctx).
			Str("field", label).
			Str("value", current).
			Str("using", options[0]).
			Msg("unknown form default, using first option")
	}
	return f
}

func newTextField(label string, kind fieldKind, value string) formField {
	ti := textinput.New()
	ti.CharLimit = inputCharLimit
	ti.Width = inputWidth
	ti.SetValue(value)
	return formField{label: label, kind: kind, input: ti}
}

func unitLabels(units []stomata.Unit) []string {
	labels := make([]string, len(units))
	for i, u := range units {
		labels[i] = u.Label
	}
	return labels
}

// Init initializes the model.
func (m *FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m *FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

// handleKeyMsg processes keyboard input.
//
//nolint:exhaustive // Only handling relevant key types for form navigation.
func (m *FormModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	field := &m.fields[m.focus]

	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.state = FormStateQuitting
		return m, tea.Quit

	case tea.KeyTab, tea.KeyDown:
		return m, m.moveFocus(1)

	case tea.KeyShiftTab, tea.KeyUp:
		return m, m.moveFocus(-1)

	case tea.KeyEnter, tea.KeyCtrlS:
		m.calculate()
		return m, nil

	case tea.KeyLeft, tea.KeyRight:
		step := 1
		if msg.Type == tea.KeyLeft {
			step = -1
		}
		switch field.kind {
		case fieldSelect:
			field.selected = (field.selected + step + len(field.options)) % len(field.options)
			return m, nil
		case fieldInteger:
			stepInteger(field, step)
			return m, nil
		case fieldText:
			// Cursor movement handled by the text input below.
		}

	case tea.KeyRunes:
		if field.kind == fieldSelect {
			if string(msg.Runes) == "q" {
				m.state = FormStateQuitting
				return m, tea.Quit
			}
			return m, nil
		}
		if field.kind == fieldInteger && !allDigits(msg.Runes) {
			return m, nil
		}
	}

	if field.kind == fieldSelect {
		return m, nil
	}

	var cmd tea.Cmd
	field.input, cmd = field.input.Update(msg)
	return m, cmd
}

// moveFocus shifts focus by delta, wrapping around.
func (m *FormModel) moveFocus(delta int) tea.Cmd {
	current := &m.fields[m.focus]
	if current.kind == fieldInteger {
		clampInteger(current)
	}
	current.input.Blur()

	m.focus = (m.focus + delta + len(m.fields)) % len(m.fields)

	next := &m.fields[m.focus]
	if next.kind == fieldSelect {
		return nil
	}
	return next.input.Focus()
}

// calculate runs the estimator on the current field values.
func (m *FormModel) calculate() {
	for i := range m.fields {
		if m.fields[i].kind == fieldInteger {
			clampInteger(&m.fields[i])
		}
	}

	result, err := m.estimateFn(m.ctx, m.RawInput())
	if err != nil {
		m.failure = m.reason(err)
		m.state = FormStateShowingFailure
		logging.FromContext(m.ctx).Debug().Ctx(m.ctx).Err(err).Msg("form estimate rejected")
		return
	}

	m.result = result
	m.failure = ""
	m.state = FormStateShowingResult
}

func (m *FormModel) reason(err error) string {
	var verr *stomata.ValidationError
	if errors.As(err, &verr) {
		if m.useKorean {
			return verr.ReasonKorean()
		}
		return verr.Reason()
	}
	return err.Error()
}

// RawInput returns the form values as an estimator request.
func (m *FormModel) RawInput() stomata.RawInput {
	return stomata.RawInput{
		LeafType:    m.fields[FieldLeafType].value(),
		Width:       m.fields[FieldWidth].value(),
		Height:      m.fields[FieldHeight].value(),
		NumLeaves:   m.fields[FieldNumLeaves].value(),
		AreaUnit:    m.fields[FieldAreaUnit].value(),
		CO2Unit:     m.fields[FieldCO2Unit].value(),
		PeopleCount: m.fields[FieldPeopleCount].value(),
	}
}

// Result returns the last successful estimate, if any.
func (m *FormModel) Result() (stomata.Result, bool) {
	return m.result, m.state == FormStateShowingResult
}

// Failure returns the last failure reason, if any.
func (m *FormModel) Failure() (string, bool) {
	return m.failure, m.state == FormStateShowingFailure
}

// State returns the current form state.
func (m *FormModel) State() FormState {
	return m.state
}

// Focus returns the index of the focused field.
func (m *FormModel) Focus() int {
	return m.focus
}

// View renders the current view.
func (m *FormModel) View() string {
	if m.state == FormStateQuitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(FormTitle))
	b.WriteString("\n")
	b.WriteString(SubtleStyle.Render(FormDescription))
	b.WriteString("\n\n")

	for i := range m.fields {
		b.WriteString(m.renderField(i))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch m.state {
	case FormStateShowingResult:
		b.WriteString(RenderResult(m.result, m.notComputable, m.width))
		b.WriteString("\n")
	case FormStateShowingFailure:
		b.WriteString(RenderFailure(m.failure, m.width))
		b.WriteString("\n")
	case FormStateEditing, FormStateQuitting:
	}

	b.WriteString(SubtleStyle.Render(
		"tab/↑↓: move  ←→: change  enter: 계산하기  esc: quit"))
	return b.String()
}

func (m *FormModel) renderField(i int) string {
	f := &m.fields[i]

	marker := "  "
	label := LabelStyle.Render(f.label + ": ")
	if i == m.focus {
		marker = FocusedStyle.Render("> ")
		label = FocusedStyle.Render(f.label + ": ")
	}

	if f.kind == fieldSelect {
		return marker + label + ValueStyle.Render("‹ "+f.value()+" ›")
	}
	return marker + label + f.input.View()
}

func stepInteger(f *formField, step int) {
	n, err := strconv.Atoi(strings.TrimSpace(f.input.Value()))
	if err != nil {
		n = integerMin
	} else {
		n += step
	}
	f.input.SetValue(strconv.Itoa(max(n, integerMin)))
}

// clampInteger raises values below the minimum. Non-numeric text is left for
// the estimator to reject.
func clampInteger(f *formField) {
	n, err := strconv.Atoi(strings.TrimSpace(f.input.Value()))
	if err != nil {
		return
	}
	if n < integerMin {
		f.input.SetValue(strconv.Itoa(integerMin))
	}
}

func allDigits(runes []rune) bool {
	for _, r := range runes {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(runes) > 0
}
