package mphftest

const (
	// DefaultInput is the word list used when none is given.
	DefaultInput = "/usr/share/dict/words"
	// DefaultArtifact is the file every builder writes and every checker reads.
	DefaultArtifact = "mphf.output.bin"
	// CheckFlag switches a checker to verification mode.
	CheckFlag = "--check"
)

// Stage pairs the program building an MPHF with the program verifying it.
type Stage struct {
	Builder string
	Checker string
}

// DefaultStages returns the stages of a full run, in order.
func DefaultStages() []Stage {
	return []Stage{
		{Builder: "compute_mphf_seq", Checker: "test_mphf"},
		{Builder: "compute_mphf_scan", Checker: "test_mphf"},
		{Builder: "compute_mphf_scan_mmap", Checker: "test_mphf"},
		{Builder: "compute_mphf_hem", Checker: "test_mphf_hem"},
	}
}

// StageStep identifies the part of a stage that failed.
type StageStep string

const (
	StepBuild   StageStep = "build"
	StepCheck   StageStep = "check"
	StepCleanup StageStep = "cleanup"
)
