package requests

type Job struct {
	Name      string `json:"name" yaml:"name"`
	BurstTime int    `json:"burst_time" yaml:"burst_time"`
}

type ScheduleRequests struct {
	Processes []Job `json:"processes" yaml:"processes"`
	// TimeQuantum overrides the configured round robin quantum when set.
	TimeQuantum *int `json:"time_quantum,omitempty" yaml:"time_quantum,omitempty"`
}
