package standings

// Scores for events that predate the live system, keyed by event name then
// player name. Event names are matched case-insensitively against live
// events so a historical event re-entered live is never counted twice.
var historicalScores = map[string]map[string]int{
	"WrestleMania 40": {
		"Dan":   6,
		"Mike":  4,
		"Joey":  5,
		"Chris": 3,
	},
	"SummerSlam 2024": {
		"Dan":   3,
		"Mike":  5,
		"Joey":  2,
		"Chris": 4,
	},
	"Survivor Series 2024": {
		"Dan":   4,
		"Mike":  3,
		"Joey":  4,
		"Chris": 2,
	},
}
