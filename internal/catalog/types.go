// Package catalog holds the immutable setup and lesson catalogs and the
// selection state that decides which setup the detail overlay shows.
package catalog

// Difficulty grades how hard a setup is to trade.
type Difficulty string

const (
	Easy     Difficulty = "Easy"
	Medium   Difficulty = "Medium"
	Advanced Difficulty = "Advanced"
)

// Bias is the directional bias of a setup.
type Bias string

const (
	Bullish Bias = "Bullish"
	Bearish Bias = "Bearish"
	Neutral Bias = "Neutral"
)

// Setup is one trading pattern with its rules. Win rate and returns are
// supplied by the catalog, never derived.
type Setup struct {
	ID          string     `yaml:"id"`
	Name        string     `yaml:"name"`
	WinRate     int        `yaml:"win_rate"`
	AvgReturn   string     `yaml:"avg_return"`
	Timeframe   string     `yaml:"timeframe"`
	Difficulty  Difficulty `yaml:"difficulty"`
	Bias        Bias       `yaml:"bias"`
	Description string     `yaml:"description"`
	HowToSpot   []string   `yaml:"how_to_spot"`
	EntryRules  []string   `yaml:"entry_rules"`
	ExitRules   []string   `yaml:"exit_rules"`
	BestTime    string     `yaml:"best_time"`
	RiskReward  string     `yaml:"risk_reward"`
	Pattern     string     `yaml:"pattern"`
}

// Lesson is one short reading in the learn section.
type Lesson struct {
	ID       string   `yaml:"id"`
	Title    string   `yaml:"title"`
	Duration string   `yaml:"duration"`
	Icon     string   `yaml:"icon"`
	Content  []string `yaml:"content"`
	Tips     []string `yaml:"tips"`
}

// Catalog is the full set of setups and lessons, loaded once at startup.
type Catalog struct {
	Setups  []Setup
	Lessons []Lesson
}

// Setup returns the setup with the given id.
func (c *Catalog) Setup(id string) (Setup, bool) {
	for _, s := range c.Setups {
		if s.ID == id {
			return s, true
		}
	}
	return Setup{}, false
}

// Lesson returns the lesson with the given id.
func (c *Catalog) Lesson(id string) (Lesson, bool) {
	for _, l := range c.Lessons {
		if l.ID == id {
			return l, true
		}
	}
	return Lesson{}, false
}
