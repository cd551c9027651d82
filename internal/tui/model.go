package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/growthkit/mrrcalc/internal/calculation"
	"github.com/growthkit/mrrcalc/internal/config"
	"github.com/growthkit/mrrcalc/internal/domain"
	"github.com/growthkit/mrrcalc/internal/output"
	"github.com/growthkit/mrrcalc/internal/tui/scenes"
)

var hundredPct = decimal.NewFromInt(100)

// Model represents the entire application state
type Model struct {
	// Navigation
	currentScene  Scene
	previousScene Scene

	// Terminal dimensions
	width  int
	height int

	// Configuration and session state
	configPath string
	scenario   *domain.Scenario

	// Calculation engine
	calcEngine *calculation.Engine

	// Scene models
	dashboardModel *scenes.DashboardModel
	leversModel    *scenes.LeversModel
	planModel      *scenes.PlanModel

	// Error state
	err error

	// Loading state
	loading bool
}

// NewModel creates a new application model. With an empty config path the
// session starts from the default assumptions immediately.
func NewModel(configPath string) Model {
	m := Model{
		currentScene:   SceneDashboard,
		configPath:     configPath,
		scenario:       domain.NewScenario(domain.DefaultAssumptions()),
		calcEngine:     calculation.NewEngine(),
		dashboardModel: scenes.NewDashboardModel(),
		planModel:      scenes.NewPlanModel(),
		width:          80,
		height:         24,
		loading:        configPath != "",
	}
	m.leversModel = scenes.NewLeversModel(m.scenario)
	m.recompute()
	return m
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	if m.configPath == "" {
		return nil
	}
	return loadConfigCmd(m.configPath)
}

// loadConfigCmd returns a command that loads the configuration file
func loadConfigCmd(path string) tea.Cmd {
	return func() tea.Msg {
		parser := config.NewInputParser()
		cfg, err := parser.LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ConfigLoadedMsg{Config: cfg}
	}
}

// recompute reruns every derived value from the current scenario state and
// pushes the results into the display scenes. The whole pipeline is pure and
// fast enough to run synchronously on each input change.
func (m *Model) recompute() {
	a := m.scenario.Assumptions
	ov := m.scenario.Overrides

	baseline := m.calcEngine.ProjectSeries(a, domain.Overrides{}, domain.HorizonPoints())
	scenario := m.calcEngine.ProjectSeries(a, ov, domain.HorizonPoints())

	lift := domain.UndefinedImpact()
	base12 := baseline.MRRAt(calculation.ImpactHorizonMonths)
	if !base12.IsZero() {
		pct := scenario.MRRAt(calculation.ImpactHorizonMonths).
			Sub(base12).Div(base12).
			Mul(hundredPct).Round(0).IntPart()
		lift = domain.Impact(pct)
	}

	insight := output.InsightText(m.calcEngine.RankedInsight(a, ov))

	m.dashboardModel.SetData(baseline, scenario, lift, insight)
	m.planModel.SetPlan(m.calcEngine.PrioritizePlan(a, ov))
}
