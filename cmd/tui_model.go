package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/evoljewels/evolcli/internal/catalog"
	"github.com/evoljewels/evolcli/internal/display"
	"github.com/evoljewels/evolcli/internal/store"
	"github.com/evoljewels/evolcli/internal/survey"
)

const (
	minTUIWidth  = 92
	minTUIHeight = 24
)

var (
	tuiHeaderStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	tuiMetaStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	tuiHintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	tuiValueStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	tuiPriceStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	tuiCelebStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	tuiMutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	tuiPromptStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	tuiCursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	tuiSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
)

type tuiPhase int

const (
	phaseSurvey tuiPhase = iota
	phaseLoading
	phaseBrowse
)

type tuiOverlay int

const (
	overlayNone tuiOverlay = iota
	overlayCart
	overlayWishlist
)

type tuiFocus int

const (
	tuiFocusList tuiFocus = iota
	tuiFocusDetail
)

// surveyDoneMsg signals that FinishSurvey returned; the store already
// holds the outcome (recommendations or a recorded error).
type surveyDoneMsg struct{}

type productListItem struct {
	product     catalog.Product
	title       string
	description string
	filterValue string
}

func (p productListItem) FilterValue() string { return p.filterValue }
func (p productListItem) Title() string       { return p.title }
func (p productListItem) Description() string { return p.description }

type storefrontModel struct {
	st        *store.Store
	questions []survey.Question

	phase   tuiPhase
	overlay tuiOverlay

	// survey state
	questionIndex int
	optionCursor  int
	picked        []string
	input         textinput.Model

	spinner spinner.Model
	list    list.Model
	detail  viewport.Model

	focus      tuiFocus
	showHelp   bool
	selectedID string

	categoryChoices []string
	categoryIndex   int
	sortChoices     []string
	sortIndex       int
	celebrityIndex  int

	overlayCursor int

	visiblePieces int

	fatalErr error

	width, height   int
	bodyHeight      int
	listPaneWidth   int
	detailPaneWidth int
	tooSmall        bool
}

func newStorefrontModel(st *store.Store) storefrontModel {
	delegate := list.NewDefaultDelegate()
	delegate.SetHeight(2)
	delegate.SetSpacing(1)

	lst := list.New([]list.Item{}, delegate, 0, 0)
	lst.Title = "Pieces"
	lst.SetStatusBarItemName("piece", "pieces")
	lst.SetShowStatusBar(true)
	lst.SetFilteringEnabled(true)
	lst.SetShowHelp(false)
	lst.SetShowPagination(true)
	lst.DisableQuitKeybindings()

	detail := viewport.New(0, 0)
	detail.KeyMap.PageDown.SetKeys("f", "pgdown")
	detail.KeyMap.PageUp.SetKeys("pgup")
	detail.KeyMap.HalfPageDown.SetKeys("d")
	detail.KeyMap.HalfPageUp.SetKeys("u")

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))

	input := textinput.New()
	input.CharLimit = 200
	input.Width = 60

	model := storefrontModel{
		st:        st,
		questions: survey.Questions(),
		phase:     phaseSurvey,
		spinner:   spin,
		list:      lst,
		detail:    detail,
		input:     input,
		focus:     tuiFocusList,
	}
	model.prepareQuestion()
	return model
}

func (m storefrontModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m storefrontModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case surveyDoneMsg:
		m.phase = phaseBrowse
		m.overlay = overlayNone
		m.focus = tuiFocusList
		m.initializeBrowseChoices()
		m.applyCurrentFilters(true)
		m.resize()
		return m, nil

	case spinner.TickMsg:
		if m.phase == phaseLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}

	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey && keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.phase {
	case phaseSurvey:
		if isKey {
			return m.updateSurvey(keyMsg)
		}
		if m.questions[m.questionIndex].Kind == survey.FreeText {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil

	case phaseLoading:
		if isKey && keyMsg.String() == "q" {
			return m, tea.Quit
		}
		return m, nil
	}

	return m.updateBrowse(msg)
}

// --- survey phase ---

// prepareQuestion loads any previously recorded answer so stepping back
// through the survey keeps earlier selections.
func (m *storefrontModel) prepareQuestion() {
	q := m.questions[m.questionIndex]
	prior := m.st.Answers()[m.questionIndex]

	m.optionCursor = 0
	m.picked = nil
	m.input.Blur()

	switch q.Kind {
	case survey.Single:
		for i, option := range q.Options {
			if option == prior.Choice {
				m.optionCursor = i
				break
			}
		}
	case survey.Multiple:
		m.picked = prior.List()
	case survey.FreeText:
		m.input.Placeholder = q.Placeholder
		m.input.SetValue(prior.Choice)
		m.input.Focus()
	}
}

func (m storefrontModel) updateSurvey(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	q := m.questions[m.questionIndex]
	key := keyMsg.String()

	if q.Kind == survey.FreeText {
		switch key {
		case "enter":
			m.st.AnswerQuestion(m.questionIndex, survey.SingleAnswer(m.input.Value()))
			return m.advanceSurvey()
		case "esc":
			if q.Optional {
				m.st.AnswerQuestion(m.questionIndex, survey.Answer{})
				return m.advanceSurvey()
			}
			return m, nil
		case "shift+tab":
			return m.stepBackSurvey()
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(keyMsg)
		return m, cmd
	}

	switch key {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.optionCursor > 0 {
			m.optionCursor--
		}
	case "down", "j":
		if m.optionCursor < len(q.Options)-1 {
			m.optionCursor++
		}
	case "left", "shift+tab":
		return m.stepBackSurvey()
	case " ":
		if q.Kind == survey.Multiple {
			m.togglePicked(q.Options[m.optionCursor])
		}
	case "enter":
		switch q.Kind {
		case survey.Single:
			m.st.AnswerQuestion(m.questionIndex, survey.SingleAnswer(q.Options[m.optionCursor]))
			return m.advanceSurvey()
		case survey.Multiple:
			if len(m.picked) == 0 {
				// pick-many questions need at least one choice
				return m, nil
			}
			m.st.AnswerQuestion(m.questionIndex, survey.MultiAnswer(m.picked...))
			return m.advanceSurvey()
		}
	}
	return m, nil
}

func (m *storefrontModel) togglePicked(option string) {
	for i, p := range m.picked {
		if p == option {
			m.picked = append(m.picked[:i], m.picked[i+1:]...)
			return
		}
	}
	m.picked = append(m.picked, option)
}

func (m storefrontModel) advanceSurvey() (tea.Model, tea.Cmd) {
	if m.questionIndex+1 < len(m.questions) {
		m.questionIndex++
		m.prepareQuestion()
		return m, textinput.Blink
	}

	m.phase = phaseLoading
	return m, tea.Batch(m.spinner.Tick, finishSurveyCmd(m.st))
}

func (m storefrontModel) stepBackSurvey() (tea.Model, tea.Cmd) {
	if m.questionIndex == 0 {
		return m, nil
	}
	m.questionIndex--
	m.prepareQuestion()
	return m, textinput.Blink
}

func finishSurveyCmd(st *store.Store) tea.Cmd {
	return func() tea.Msg {
		// The recommendation pipeline never fails outward: a dead
		// service becomes an error-shaped result recorded on the store.
		st.FinishSurvey(context.Background())
		return surveyDoneMsg{}
	}
}

// --- browse phase ---

func (m storefrontModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)

	if isKey && m.overlay != overlayNone {
		return m.updateOverlay(keyMsg)
	}

	if isKey {
		filtering := m.list.FilterState() == list.Filtering
		key := keyMsg.String()

		switch key {
		case "q":
			if !filtering {
				return m, tea.Quit
			}
		case "tab":
			if !filtering {
				if m.focus == tuiFocusList {
					m.focus = tuiFocusDetail
				} else {
					m.focus = tuiFocusList
				}
				return m, nil
			}
		case "esc":
			if m.focus == tuiFocusDetail && !filtering {
				m.focus = tuiFocusList
				return m, nil
			}
		case "?":
			if !filtering {
				m.showHelp = !m.showHelp
				m.resize()
				return m, nil
			}
		case "enter":
			if !filtering {
				if item, ok := m.selectedProductItem(); ok {
					product := item.product
					m.st.SelectProduct(&product)
					m.focus = tuiFocusDetail
				}
				return m, nil
			}
		case "b":
			if !filtering {
				if item, ok := m.selectedProductItem(); ok {
					m.st.AddToCart(item.product)
					m.refreshDetail(false)
					return m, m.list.NewStatusMessage("Added to bag: " + item.product.Name)
				}
				return m, nil
			}
		case "w":
			if !filtering {
				if item, ok := m.selectedProductItem(); ok {
					if m.st.InWishlist(item.product.ID) {
						m.st.RemoveFromWishlist(item.product.ID)
						m.refreshDetail(false)
						return m, m.list.NewStatusMessage("Removed from wishlist: " + item.product.Name)
					}
					m.st.AddToWishlist(item.product)
					m.refreshDetail(false)
					return m, m.list.NewStatusMessage("Saved to wishlist: " + item.product.Name)
				}
				return m, nil
			}
		case "B":
			if !filtering {
				m.st.ToggleCart()
				m.overlay = overlayCart
				m.overlayCursor = 0
				return m, nil
			}
		case "W":
			if !filtering {
				m.st.ToggleWishlist()
				m.overlay = overlayWishlist
				m.overlayCursor = 0
				return m, nil
			}
		case "c":
			if !filtering {
				m.cycleCategory()
				return m, nil
			}
		case "s":
			if !filtering {
				m.cycleSortMode()
				return m, nil
			}
		case "m":
			if !filtering {
				return m.cycleCelebrity()
			}
		case "r":
			if !filtering {
				m.st.Reset()
				m.phase = phaseSurvey
				m.overlay = overlayNone
				m.questionIndex = 0
				m.celebrityIndex = -1
				m.selectedID = ""
				m.prepareQuestion()
				return m, textinput.Blink
			}
		}

		if m.focus == tuiFocusDetail && !filtering {
			var cmd tea.Cmd
			m.detail, cmd = m.detail.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	m.refreshDetail(false)
	return m, cmd
}

func (m storefrontModel) updateOverlay(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := keyMsg.String()

	closeOverlay := func() (tea.Model, tea.Cmd) {
		if m.overlay == overlayCart && m.st.ShowCart() {
			m.st.ToggleCart()
		}
		if m.overlay == overlayWishlist && m.st.ShowWishlist() {
			m.st.ToggleWishlist()
		}
		m.overlay = overlayNone
		return m, nil
	}

	switch key {
	case "esc", "q":
		return closeOverlay()
	case "B":
		if m.overlay == overlayCart {
			return closeOverlay()
		}
	case "W":
		if m.overlay == overlayWishlist {
			return closeOverlay()
		}
	case "up", "k":
		if m.overlayCursor > 0 {
			m.overlayCursor--
		}
		return m, nil
	case "down", "j":
		if m.overlayCursor < m.overlayLen()-1 {
			m.overlayCursor++
		}
		return m, nil
	}

	switch m.overlay {
	case overlayCart:
		items := m.st.Cart()
		if m.overlayCursor >= len(items) {
			return m, nil
		}
		current := items[m.overlayCursor]
		switch key {
		case "+", "=":
			m.st.UpdateCartQuantity(current.ID, current.Quantity+1)
		case "-":
			m.st.UpdateCartQuantity(current.ID, current.Quantity-1)
		case "x", "delete", "backspace":
			m.st.RemoveFromCart(current.ID)
		}
	case overlayWishlist:
		items := m.st.Wishlist()
		if m.overlayCursor >= len(items) {
			return m, nil
		}
		current := items[m.overlayCursor]
		switch key {
		case "b", "enter":
			m.st.AddToCart(current)
			m.st.RemoveFromWishlist(current.ID)
		case "x", "delete", "backspace":
			m.st.RemoveFromWishlist(current.ID)
		}
	}

	if m.overlayCursor >= m.overlayLen() && m.overlayCursor > 0 {
		m.overlayCursor = m.overlayLen() - 1
	}
	return m, nil
}

func (m storefrontModel) overlayLen() int {
	switch m.overlay {
	case overlayCart:
		return len(m.st.Cart())
	case overlayWishlist:
		return len(m.st.Wishlist())
	default:
		return 0
	}
}

func (m *storefrontModel) initializeBrowseChoices() {
	products := m.st.Recommendations().Products

	seen := map[string]bool{}
	for _, p := range products {
		seen[p.Category] = true
	}
	m.categoryChoices = []string{""}
	for _, category := range catalog.Categories {
		if seen[category] {
			m.categoryChoices = append(m.categoryChoices, category)
		}
	}
	m.categoryIndex = 0

	m.sortChoices = []string{catalog.SortMatch, catalog.SortPriceAsc, catalog.SortPriceDesc}
	m.sortIndex = 0
	m.celebrityIndex = -1
}

func (m *storefrontModel) cycleCategory() {
	if len(m.categoryChoices) == 0 {
		return
	}
	m.categoryIndex = (m.categoryIndex + 1) % len(m.categoryChoices)
	if category := m.categoryChoices[m.categoryIndex]; category == "" {
		m.st.ViewAllProducts()
	} else {
		m.st.SelectCategory(category)
	}
	m.applyCurrentFilters(false)
}

func (m *storefrontModel) cycleSortMode() {
	if len(m.sortChoices) == 0 {
		return
	}
	m.sortIndex = (m.sortIndex + 1) % len(m.sortChoices)
	m.applyCurrentFilters(false)
}

func (m storefrontModel) cycleCelebrity() (tea.Model, tea.Cmd) {
	celebrities := m.st.Recommendations().Celebrities
	if len(celebrities) == 0 {
		return m, m.list.NewStatusMessage("No celebrity matches for these answers.")
	}

	m.celebrityIndex++
	if m.celebrityIndex >= len(celebrities) {
		m.celebrityIndex = -1
		m.st.SelectCelebrity(nil)
		return m, m.list.NewStatusMessage("Cleared style muse.")
	}

	chosen := celebrities[m.celebrityIndex]
	m.st.SelectCelebrity(&chosen)
	note := fmt.Sprintf("Muse: %s (%d%% match)", chosen.Name, chosen.MatchPercentage)
	if len(chosen.VibeTags) > 0 {
		note += " • " + strings.Join(chosen.VibeTags, ", ")
	}
	return m, m.list.NewStatusMessage(note)
}

func (m *storefrontModel) applyCurrentFilters(resetSelection bool) {
	currentID := m.selectedID
	all := m.st.Recommendations().Products

	opts := catalog.FilterOptions{
		Category: m.categoryChoices[m.categoryIndex],
		Sort:     m.sortChoices[m.sortIndex],
	}
	filtered := catalog.Filter(all, opts)
	m.visiblePieces = len(filtered)

	items := make([]list.Item, 0, len(filtered))
	for _, p := range filtered {
		items = append(items, buildProductListItem(p))
	}

	m.list.Title = fmt.Sprintf("Pieces • %d of %d", len(filtered), len(all))
	m.list.SetItems(items)

	target := -1
	if !resetSelection && currentID != "" {
		for i, item := range items {
			if item.(productListItem).product.ID == currentID {
				target = i
				break
			}
		}
	}
	if target < 0 && len(items) > 0 {
		target = 0
	}
	if target >= 0 {
		m.list.Select(target)
	}

	m.refreshDetail(true)
}

func (m storefrontModel) selectedProductItem() (productListItem, bool) {
	item, ok := m.list.SelectedItem().(productListItem)
	return item, ok
}

func (m *storefrontModel) refreshDetail(resetScroll bool) {
	var content string
	nextID := ""

	if item, ok := m.list.SelectedItem().(productListItem); ok {
		content = m.renderProductDetail(item.product, m.detail.Width)
		nextID = item.product.ID
	}
	if content == "" {
		if reason := m.st.RecommendationError(); reason != "" {
			content = "Recommendations unavailable:\n" + wrapText(reason, maxInt(24, m.detail.Width)) +
				"\n\nPress r to retake the survey and try again."
		} else {
			content = "No pieces match the current view.\n\nPress c to cycle categories or r to retake the survey."
		}
	}

	if resetScroll || nextID != m.selectedID {
		m.detail.GotoTop()
	}
	m.selectedID = nextID
	m.detail.SetContent(content)
}

func buildProductListItem(p catalog.Product) productListItem {
	descParts := []string{display.FormatPrice(p.Price), p.Category}
	if p.MatchScore > 0 {
		descParts = append(descParts, fmt.Sprintf("%.0f%% match", p.MatchScore*100))
	}

	filterTokens := []string{
		p.Name,
		p.Description,
		p.Category,
		p.Material,
		strings.Join(p.StyleTags, " "),
		strings.Join(p.Occasions, " "),
		p.VibeDescription,
	}

	return productListItem{
		product:     p,
		title:       p.Name,
		description: strings.Join(descParts, "  •  "),
		filterValue: strings.ToLower(strings.Join(filterTokens, " ")),
	}
}

func (m storefrontModel) renderProductDetail(p catalog.Product, width int) string {
	maxWidth := maxInt(24, width)

	lines := []string{
		tuiValueStyle.Render(wrapText(p.Name, maxWidth)),
		tuiPriceStyle.Render(display.FormatPrice(p.Price)),
		"",
	}

	lines = append(lines, fmt.Sprintf("%s %s", tuiMetaStyle.Render("Category:"), p.Category))
	if p.Material != "" {
		lines = append(lines, fmt.Sprintf("%s %s", tuiMetaStyle.Render("Material:"), p.Material))
	}
	if p.MatchScore > 0 {
		lines = append(lines, fmt.Sprintf("%s %.0f%%", tuiMetaStyle.Render("Match:"), p.MatchScore*100))
	}
	lines = append(lines, fmt.Sprintf("%s %s", tuiMetaStyle.Render("Delivery:"), p.DeliveryTime))

	if p.Description != "" {
		lines = append(lines, "", tuiMetaStyle.Render("Description:"), wrapText(p.Description, maxWidth))
	}
	if p.VibeDescription != "" {
		lines = append(lines, "", tuiMetaStyle.Render("Vibe:"), wrapText(p.VibeDescription, maxWidth))
	}
	if len(p.StyleTags) > 0 {
		lines = append(lines, "", tuiMetaStyle.Render("Style tags: ")+wrapText(strings.Join(p.StyleTags, ", "), maxWidth))
	}
	if len(p.Occasions) > 0 {
		lines = append(lines, tuiMetaStyle.Render("Occasions: ")+wrapText(strings.Join(p.Occasions, ", "), maxWidth))
	}

	states := []string{}
	if m.st.InWishlist(p.ID) {
		states = append(states, "in wishlist")
	}
	for _, item := range m.st.Cart() {
		if item.ID == p.ID {
			states = append(states, fmt.Sprintf("in bag x%d", item.Quantity))
			break
		}
	}
	if len(states) > 0 {
		lines = append(lines, "", tuiCelebStyle.Render(strings.Join(states, " • ")))
	}

	if p.Image != "" {
		lines = append(lines, "", tuiMutedStyle.Render("Image URL:"), tuiMutedStyle.Render(wrapText(p.Image, maxWidth)))
	}

	return strings.Join(lines, "\n")
}

// --- views ---

func (m storefrontModel) View() string {
	switch m.phase {
	case phaseSurvey:
		return m.surveyView()
	case phaseLoading:
		return m.loadingView()
	}

	if m.width == 0 || m.height == 0 {
		return tuiMetaStyle.Render("Loading interface...")
	}
	if m.tooSmall {
		return lipgloss.NewStyle().
			Padding(1, 2).
			Render(
				fmt.Sprintf(
					"Terminal too small (%dx%d).\nResize to at least %dx%d for the two-pane storefront.",
					m.width, m.height, minTUIWidth, minTUIHeight,
				),
			)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.headerView(),
		m.bodyView(),
		m.footerView(),
	)
}

func (m storefrontModel) surveyView() string {
	q := m.questions[m.questionIndex]

	lines := []string{
		tuiHeaderStyle.Render("evolcli storefront — style survey"),
		tuiMetaStyle.Render(fmt.Sprintf("Question %d of %d", m.questionIndex+1, len(m.questions))),
		"",
		tuiPromptStyle.Render(q.Prompt),
		"",
	}

	switch q.Kind {
	case survey.FreeText:
		lines = append(lines, m.input.View(), "")
		hint := "enter submit"
		if q.Optional {
			hint += " • esc skip"
		}
		hint += " • shift+tab back • ctrl+c quit"
		lines = append(lines, tuiHintStyle.Render(hint))
	default:
		for i, option := range q.Options {
			cursor := "  "
			if i == m.optionCursor {
				cursor = tuiCursorStyle.Render("› ")
			}
			marker := ""
			if q.Kind == survey.Multiple {
				marker = "[ ] "
				if containsString(m.picked, option) {
					marker = tuiSelectedStyle.Render("[x] ")
				}
			}
			text := option
			if i == m.optionCursor {
				text = tuiSelectedStyle.Render(option)
			}
			lines = append(lines, cursor+marker+text)
		}
		lines = append(lines, "")
		hint := "↑/↓ move • enter choose"
		if q.Kind == survey.Multiple {
			hint = "↑/↓ move • space toggle • enter confirm"
		}
		hint += " • ← back • q quit"
		lines = append(lines, tuiHintStyle.Render(hint))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(lines, "\n"))
}

func (m storefrontModel) loadingView() string {
	width := m.width
	if width == 0 {
		width = 80
	}
	skeletonStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240"))

	lines := []string{
		tuiHeaderStyle.Render("evolcli storefront"),
		tuiMetaStyle.Render("Matching your answers to the collection..."),
		"",
		fmt.Sprintf("%s Fetching celebrity matches and pieces", m.spinner.View()),
		tuiHintStyle.Render("Tip: press q to cancel."),
		"",
		skeletonStyle.Render("┌──────────────────────────────┬─────────────────────────────────────────┐"),
		skeletonStyle.Render("│  Loading piece list...       │  Loading detail panel...               │"),
		skeletonStyle.Render("│  • categories                │  • price and delivery                  │"),
		skeletonStyle.Render("│  • celebrity matches         │  • style tags and occasions            │"),
		skeletonStyle.Render("│  • match ordering            │  • scroll viewport                     │"),
		skeletonStyle.Render("└──────────────────────────────┴─────────────────────────────────────────┘"),
	}

	return lipgloss.NewStyle().
		Width(width).
		Padding(1, 2).
		Render(strings.Join(lines, "\n"))
}

func (m *storefrontModel) resize() {
	if m.width == 0 || m.height == 0 {
		return
	}
	if m.phase != phaseBrowse {
		return
	}

	m.tooSmall = m.width < minTUIWidth || m.height < minTUIHeight
	if m.tooSmall {
		return
	}

	headerH := 3
	footerH := 2
	if m.showHelp {
		footerH = 7
	}
	m.bodyHeight = maxInt(8, m.height-headerH-footerH-1)

	listWidth := maxInt(40, int(float64(m.width)*0.43))
	if listWidth > m.width-42 {
		listWidth = m.width / 2
	}
	detailWidth := m.width - listWidth - 1
	if detailWidth < 36 {
		detailWidth = 36
		listWidth = m.width - detailWidth - 1
	}

	m.listPaneWidth = listWidth
	m.detailPaneWidth = detailWidth

	listInnerWidth := maxInt(24, listWidth-4)
	detailInnerWidth := maxInt(24, detailWidth-4)
	panelInnerHeight := maxInt(6, m.bodyHeight-2)

	m.list.SetSize(listInnerWidth, panelInnerHeight)
	m.detail.Width = detailInnerWidth
	m.detail.Height = panelInnerHeight
	m.refreshDetail(false)
}

func (m storefrontModel) headerView() string {
	focus := "list"
	if m.focus == tuiFocusDetail {
		focus = "detail"
	}

	result := m.st.Recommendations()

	top := fmt.Sprintf("evolcli storefront  |  %d pieces • %d celebrity matches", m.visiblePieces, len(result.Celebrities))
	if muse := m.st.SelectedCelebrity(); muse != nil {
		top += "  |  " + tuiCelebStyle.Render(fmt.Sprintf("muse: %s (%d%%)", muse.Name, muse.MatchPercentage))
	}

	bottom := fmt.Sprintf(
		"bag: %d (%s)  |  wishlist: %d  |  view: %s  |  sort: %s  |  focus: %s",
		m.st.CartCount(), display.FormatPrice(m.st.CartSubtotal()), len(m.st.Wishlist()),
		m.currentViewLabel(), m.currentSortLabel(), focus,
	)
	if reason := m.st.RecommendationError(); reason != "" {
		bottom = "recommendations unavailable (browsing empty result)  |  " + bottom
	}

	return lipgloss.NewStyle().
		Width(m.width).
		Padding(0, 1).
		Render(tuiHeaderStyle.Render(top) + "\n" + tuiMetaStyle.Render(bottom))
}

func (m storefrontModel) currentViewLabel() string {
	if category := m.st.SelectedCategory(); category != "" {
		return category
	}
	return "all"
}

func (m storefrontModel) currentSortLabel() string {
	switch m.sortChoices[m.sortIndex] {
	case catalog.SortPriceAsc:
		return "price ↑"
	case catalog.SortPriceDesc:
		return "price ↓"
	default:
		return "match"
	}
}

func (m storefrontModel) bodyView() string {
	if m.overlay != overlayNone {
		return m.overlayView()
	}

	listBorder := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("241")).
		Padding(0, 1)
	detailBorder := listBorder

	if m.focus == tuiFocusList {
		listBorder = listBorder.BorderForeground(lipgloss.Color("212"))
	} else {
		detailBorder = detailBorder.BorderForeground(lipgloss.Color("212"))
	}

	left := listBorder.
		Width(m.listPaneWidth).
		Height(m.bodyHeight).
		Render(m.list.View())
	right := detailBorder.
		Width(m.detailPaneWidth).
		Height(m.bodyHeight).
		Render(m.detail.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

func (m storefrontModel) overlayView() string {
	var title string
	lines := []string{}

	switch m.overlay {
	case overlayCart:
		items := m.st.Cart()
		title = fmt.Sprintf("Your Bag • %d items • subtotal %s", m.st.CartCount(), display.FormatPrice(m.st.CartSubtotal()))
		if len(items) == 0 {
			lines = append(lines, tuiMutedStyle.Render("Your bag is empty. Press b on a piece to add it."))
		}
		for i, item := range items {
			cursor := "  "
			if i == m.overlayCursor {
				cursor = tuiCursorStyle.Render("› ")
			}
			line := fmt.Sprintf("%s%s  x%d  %s each  •  %s",
				cursor, item.Name, item.Quantity,
				display.FormatPrice(item.Price), display.FormatPrice(item.Price*item.Quantity))
			lines = append(lines, line)
		}
		lines = append(lines, "", tuiHintStyle.Render("↑/↓ move • +/- quantity • x remove • esc close"))

	case overlayWishlist:
		items := m.st.Wishlist()
		title = fmt.Sprintf("Wishlist • %d pieces", len(items))
		if len(items) == 0 {
			lines = append(lines, tuiMutedStyle.Render("Nothing saved yet. Press w on a piece to save it."))
		}
		for i, item := range items {
			cursor := "  "
			if i == m.overlayCursor {
				cursor = tuiCursorStyle.Render("› ")
			}
			lines = append(lines, fmt.Sprintf("%s%s  %s  •  %s", cursor, item.Name, display.FormatPrice(item.Price), item.Category))
		}
		lines = append(lines, "", tuiHintStyle.Render("↑/↓ move • b move to bag • x remove • esc close"))
	}

	content := tuiPromptStyle.Render(title) + "\n\n" + strings.Join(lines, "\n")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("212")).
		Padding(0, 1).
		Width(m.width - 2).
		Height(m.bodyHeight).
		Render(content)
}

func (m storefrontModel) footerView() string {
	base := "Tab switch pane • / fuzzy filter • enter details • b bag • w wishlist • B bag view • W wishlist view • c category • s sort • m muse • r redo survey • q quit"
	if m.focus == tuiFocusDetail {
		base = "Detail: j/k or ↑/↓ scroll • u/d half-page • f page • esc list • ? help • q quit"
	}

	if !m.showHelp {
		return lipgloss.NewStyle().Padding(0, 1).Render(tuiHintStyle.Render(base))
	}

	lines := []string{
		"Key Help",
		"list pane: ↑/↓ or j/k move • / fuzzy filter • enter select piece • b add to bag • w toggle wishlist",
		"views: B open bag • W open wishlist • c cycle category • s cycle sort • m cycle celebrity muse",
		"detail pane: j/k or ↑/↓ scroll • u/d half-page • f/pgup page",
		"global: tab switch pane • esc back/close • r redo survey • ? toggle help • q quit • ctrl+c force quit",
	}
	return lipgloss.NewStyle().
		Padding(0, 1).
		Render(tuiHintStyle.Render(strings.Join(lines, "\n")))
}

func wrapText(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}
	if width < 12 {
		width = 12
	}

	line := words[0]
	lines := make([]string, 0, len(words)/6+1)
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}

func containsString(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
