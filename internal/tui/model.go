package tui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/mindfulmauschen/healthtrack/internal/assistant"
	"github.com/mindfulmauschen/healthtrack/internal/constants"
	"github.com/mindfulmauschen/healthtrack/internal/logger"
	"github.com/mindfulmauschen/healthtrack/internal/models"
	"github.com/mindfulmauschen/healthtrack/internal/notifier"
	"github.com/mindfulmauschen/healthtrack/internal/nutrition"
	"github.com/mindfulmauschen/healthtrack/internal/storage"
)

type SessionState int

const (
	StateHome SessionState = iota
	StateFood
	StateExercise
	StateProgress
	StateGoals
	StateMealPlan
	StatePantry
	StateSleep
	StateChat
	StateSettings
	StateEditing
	StateConfirmDelete
)

// tabCount is the number of states reachable with tab/shift+tab.
const tabCount = 10

var tabTitles = []string{
	"Home", "Food", "Exercise", "Progress", "Goals",
	"Meal Plan", "Pantry", "Sleep", "Chat", "Settings",
}

type EntryFormModel struct {
	Name     string
	Calories string
	Date     string
}

type WeightFormModel struct {
	Weight string
	Target bool
	Date   string
}

type SleepFormModel struct {
	Night   string
	Bedtime string
	Wakeup  string
}

type chatLine struct {
	fromUser bool
	text     string
}

type Model struct {
	store     storage.Store
	assistant *assistant.Client
	worker    *assistant.Worker
	nutrition *nutrition.Client

	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model
	quitting      bool
	width         int
	height        int
	today         string
	statusMsg     string

	// Tab data, refreshed on entry and after mutations
	foods         []models.FoodEntry
	commonFoods   []models.FoodAverage
	exercises     []models.ExerciseEntry
	weights       []models.WeightEntry
	targetWeights []models.WeightEntry
	totals        []models.DayTotals
	planCells     map[string]string
	planWeek      string
	pantryItems   []models.PantryItem
	shoppingItems []models.ShoppingItem
	sleepEntries  []models.SleepEntry
	settings      models.Settings
	calorieGoal   float64
	hasGoal       bool

	cursor int

	form       *huh.Form
	entryForm  *EntryFormModel
	weightForm *WeightFormModel
	sleepForm  *SleepFormModel

	deleteTarget int64

	chatInput   textinput.Model
	chatHistory []chatLine
	pendingID   uuid.UUID
	pendingKind string
	waiting     bool

	planSuggestion string
}

func NewModel(store storage.Store, assistantClient *assistant.Client, nutritionClient *nutrition.Client) Model {
	input := textinput.New()
	input.Placeholder = "Ask the health assistant..."
	input.CharLimit = 500

	m := Model{
		store:     store,
		assistant: assistantClient,
		nutrition: nutritionClient,
		state:     StateHome,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		today:     time.Now().Format(constants.DateFormat),
		planWeek:  models.WeekOf(time.Now()),
		chatInput: input,
	}

	if assistantClient != nil {
		m.worker = assistant.NewWorker(assistantClient)
	}

	m.refreshAll()
	m.checkWeighIn()
	return m
}

// checkWeighIn runs the weekly weigh-in reminder once at startup.
func (m *Model) checkWeighIn() {
	if !m.settings.NotificationsEnabled {
		return
	}

	lastWeighIn := ""
	if len(m.weights) > 0 {
		lastWeighIn = m.weights[len(m.weights)-1].Date
	}

	due, err := notifier.WeighInDue(lastWeighIn, time.Now())
	if err != nil || !due {
		return
	}

	m.statusMsg = "Weekly weigh-in is due. Add a weight on the Goals tab."
	if err := notifier.New(m.settings.SilentNotifications).Notify(
		"Weigh-in", "Time to record your weekly weight"); err != nil {
		logger.Warn("weigh-in notification failed", "error", err)
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateFood, StateExercise, StateSleep, StateGoals:
		keys = append(keys, m.keys.Add, m.keys.Delete)
	case StateChat:
		keys = append(keys, m.keys.Enter)
	case StateMealPlan, StatePantry:
		keys = append(keys, m.keys.Suggest)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}

	var actions []key.Binding
	switch m.state {
	case StateFood, StateExercise, StateSleep, StateGoals:
		actions = []key.Binding{m.keys.Add, m.keys.Delete, m.keys.Refresh}
	case StateMealPlan, StatePantry:
		actions = []key.Binding{m.keys.Suggest, m.keys.Refresh}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) refreshAll() {
	m.refreshFoods()
	m.refreshExercises()
	m.refreshWeights()
	m.refreshProgress()
	m.refreshMealPlan()
	m.refreshPantry()
	m.refreshSleep()
	m.refreshSettings()
}

func (m *Model) refreshFoods() {
	foods, err := m.store.GetFoodEntries(m.today)
	if err != nil {
		m.statusMsg = fmt.Sprintf("failed to load food entries: %v", err)
		return
	}
	m.foods = foods

	if common, err := m.store.GetMostCommonFoods(3); err == nil {
		m.commonFoods = common
	}
}

func (m *Model) refreshExercises() {
	exercises, err := m.store.GetExerciseEntries(m.today)
	if err != nil {
		m.statusMsg = fmt.Sprintf("failed to load exercise entries: %v", err)
		return
	}
	m.exercises = exercises
}

func (m *Model) refreshWeights() {
	weights, err := m.store.GetWeightEntries(models.WeightCurrent)
	if err == nil {
		m.weights = weights
	}
	targets, err := m.store.GetWeightEntries(models.WeightTarget)
	if err == nil {
		m.targetWeights = targets
	}
	if goal, ok, err := m.store.DailyCalorieGoal(); err == nil {
		m.calorieGoal, m.hasGoal = goal, ok
	}
}

func (m *Model) refreshProgress() {
	start := time.Now().AddDate(0, 0, -13).Format(constants.DateFormat)
	totals, err := m.store.CalorieTotalsRange(start, m.today)
	if err != nil {
		m.statusMsg = fmt.Sprintf("failed to load totals: %v", err)
		return
	}
	m.totals = totals
}

func (m *Model) refreshMealPlan() {
	cells, err := m.store.GetMealPlanWeek(m.planWeek)
	if err != nil {
		m.statusMsg = fmt.Sprintf("failed to load meal plan: %v", err)
		return
	}
	m.planCells = make(map[string]string, len(cells))
	for _, cell := range cells {
		m.planCells[cell.Day+"/"+cell.Slot] = cell.Content
	}
}

func (m *Model) refreshPantry() {
	if items, err := m.store.GetPantryItems(); err == nil {
		m.pantryItems = items
	}
	if items, err := m.store.GetShoppingItems(); err == nil {
		m.shoppingItems = items
	}
}

func (m *Model) refreshSleep() {
	start := time.Now().AddDate(0, 0, -13).Format(constants.DateFormat)
	entries, err := m.store.GetSleepEntriesRange(start, m.today)
	if err != nil {
		m.statusMsg = fmt.Sprintf("failed to load sleep diary: %v", err)
		return
	}
	m.sleepEntries = entries
}

func (m *Model) refreshSettings() {
	settings, err := m.store.GetSettings()
	if err != nil {
		m.statusMsg = fmt.Sprintf("failed to load settings: %v", err)
		return
	}
	m.settings = settings
}

// cursorMax returns the highest valid cursor index for the current tab.
func (m Model) cursorMax() int {
	switch m.state {
	case StateFood:
		return len(m.foods) - 1
	case StateExercise:
		return len(m.exercises) - 1
	case StateGoals:
		return len(m.weights) - 1
	case StateSleep:
		return len(m.sleepEntries) - 1
	case StateSettings:
		return 4
	}
	return 0
}

func parseCalories(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("calories must be a non-negative number")
	}
	return n, nil
}

func parseWeight(s string) (float64, error) {
	w, err := strconv.ParseFloat(s, 64)
	if err != nil || w <= 0 {
		return 0, fmt.Errorf("weight must be a positive number")
	}
	return w, nil
}
