// Package assignment holds the static configuration consumed by the issue
// auto-assignment classifier: the deployment path of the fine-tuned model,
// the identifier of the base model it was tuned from, and the ordered set of
// team labels forming the classifier's output space. How issue text is mapped
// onto a label is the concern of the external classification component; this
// package only guarantees the integrity of the data it hands out.
package assignment

const (
	// Model is the deployment path under which the fine-tuned issue
	// classifier is published. External components use it as a lookup key.
	Model = "/issue_auto_assign_model"

	// BaseModel identifies the pretrained foundation model the classifier
	// was fine-tuned from.
	BaseModel = "distilbert-base-uncased-finetuned-sst-2-english"

	// Count is the expected number of team labels. Consumers sizing a
	// classifier output layer should use this rather than re-counting.
	Count = 41
)

// teams is the ordered team-label set. Order matters: consumers treat the
// position of a label as the class index of the classifier output.
var teams = []string{
	"container-ecosystems",
	"windows-agent",
	"remote-config",
	"container-platform",
	"documentation",
	"agent-security",
	"container-app",
	"agent-all",
	"processes",
	"agent-platform",
	"agent-release-management",
	"networks",
	"ebpf-platform",
	"agent-apm",
	"single-machine-performance",
	"agent-e2e-testing",
	"agent-developer-tools",
	"triage",
	"windows-kernel-integrations",
	"container-integrations",
	"sdlc-security",
	"opentelemetry",
	"universal-service-monitoring",
	"agent-build-and-releases",
	"agent-configuration",
	"agent-runtimes",
	"agent-integrations",
	"agent-metric-pipelines",
	"agent-log-pipelines",
	"platform-integrations",
	"agent-ci-experience",
	"asm-go",
	"agent-cspm",
	"debugger",
	"database-monitoring",
	"network-device-monitoring",
	"serverless",
	"apm-onboarding",
	"fleet",
	"agent-processing-and-routing",
	"agent-discovery",
}

var teamIndex = func() map[string]struct{} {
	index := make(map[string]struct{}, len(teams))
	for _, team := range teams {
		index[team] = struct{}{}
	}
	return index
}()

// Teams returns the ordered team-label set. The returned slice is a copy, so
// callers may not mutate the table through it.
func Teams() []string {
	labels := make([]string, len(teams))
	copy(labels, teams)
	return labels
}

// IsTeam reports whether label is one of the team labels. Matching is exact.
func IsTeam(label string) bool {
	_, ok := teamIndex[label]
	return ok
}

// Validate checks the integrity of the shipped configuration. It is cheap and
// safe to call at process startup.
func Validate() error {
	return validate(Model, BaseModel, teams)
}
