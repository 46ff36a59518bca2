package service

import (
	"fmt"
	"strings"

	analysisDomain "github.com/septer/septer/internal/analysis/domain"
)

// Section markers the model is asked to start each part of its answer with.
const (
	MarkerInsights       = "🔍"
	MarkerReasoning      = "🧠"
	MarkerSupportingLogs = "📄"
	MarkerFixes          = "🛠️"
)

const promptTemplate = `You are a cyber forensics expert in log analysis. Analyze system/network/application logs to detect malicious activity. An "attack" is any behavior from a source IP/entity attempting unauthorized access, disruption, or exploitation, like a hacker would.
You'll be given:
- A Hunter's (analyst's) question
- A log snippet (.log, .json, .txt, or SARIF)

The hunter asks:
%s

Here is the log data:
%s

Please respond using the following format:

` + MarkerInsights + ` Insights
` + MarkerReasoning + ` Reasoning
` + MarkerSupportingLogs + ` Supporting Logs: Line number, log line, interesting part of log
` + MarkerFixes + ` Fixes or security measures that can be employed to prevent such attacks.
`

// BuildPrompt embeds the question and the log text into the forensic prompt.
func BuildPrompt(question, logText string) string {
	return fmt.Sprintf(promptTemplate, question, logText)
}

// ExtractSections splits a model response into its sections. A trimmed line
// starting with a marker opens that section and is itself dropped; every other
// line is trimmed and appended to the open section. Text before the first
// marker is discarded.
func ExtractSections(text string) analysisDomain.Answer {
	var sections [4]strings.Builder
	current := -1

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(line, MarkerInsights):
			current = 0
			continue
		case strings.HasPrefix(line, MarkerReasoning):
			current = 1
			continue
		case strings.HasPrefix(line, MarkerSupportingLogs):
			current = 2
			continue
		case strings.HasPrefix(line, MarkerFixes):
			current = 3
			continue
		}

		if current >= 0 {
			sections[current].WriteString(line)
			sections[current].WriteByte('\n')
		}
	}

	return analysisDomain.Answer{
		Insights:       strings.TrimSpace(sections[0].String()),
		Reasoning:      strings.TrimSpace(sections[1].String()),
		SupportingLogs: strings.TrimSpace(sections[2].String()),
		Fixes:          strings.TrimSpace(sections[3].String()),
	}
}
