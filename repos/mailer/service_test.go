package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultsTemplate(t *testing.T) {
	html := resultsTemplate("Royal Rumble", []Standing{
		{Rank: 1, Name: "Dan", Points: 12},
		{Rank: 2, Name: "Mike", Points: 9},
	})

	assert.Contains(t, html, "Royal Rumble is in the books")
	assert.Contains(t, html, "<tr><td>1</td><td>Dan</td><td>12</td></tr>")
	assert.Contains(t, html, "<tr><td>2</td><td>Mike</td><td>9</td></tr>")
}
