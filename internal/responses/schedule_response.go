package responses

type ProcessResponse struct {
	Name           string `json:"name" yaml:"name"`
	BurstTime      int    `json:"burst_time" yaml:"burst_time"`
	WaitingTime    int    `json:"waiting_time" yaml:"waiting_time"`
	TurnAroundTime int    `json:"turn_around_time" yaml:"turn_around_time"`
	CompletionTime int    `json:"completion_time" yaml:"completion_time"`
	ResponseTime   int    `json:"response_time" yaml:"response_time"`
}

type GanttResponse struct {
	ProcessName string `json:"process_name" yaml:"process_name"`
	Start       int    `json:"start" yaml:"start"`
	End         int    `json:"end" yaml:"end"`
}

type ScheduleResponse struct {
	RunID                 string            `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	Algorithm             string            `json:"algorithm" yaml:"algorithm"`
	TimeQuantum           int               `json:"time_quantum,omitempty" yaml:"time_quantum,omitempty"`
	ProcessCount          int               `json:"process_count" yaml:"process_count"`
	TotalTime             int               `json:"total_time" yaml:"total_time"`
	IdleTime              int               `json:"idle_time" yaml:"idle_time"`
	ContextSwitches       int               `json:"context_switches" yaml:"context_switches"`
	AverageWaitingTime    float64           `json:"average_waiting_time" yaml:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time" yaml:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time" yaml:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization" yaml:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput" yaml:"cpu_throughput"`
	Gantt                 []GanttResponse   `json:"gantt" yaml:"gantt"`
	Details               []ProcessResponse `json:"details" yaml:"details"`
}

type ErrorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}
