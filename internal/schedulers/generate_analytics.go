package schedulers

import (
	"os-scheduler/internal/responses"
	"os-scheduler/internal/util"
)

// GenerateResponse derives the per-process table, Gantt chart and averages
// for a finished run.
func GenerateResponse(result Result) responses.ScheduleResponse {
	proccessDetails := generateProcessDetails(result)
	averageWaitingTime, averageResponseTime, averageTimeAroundTime := util.CalculateAverage(proccessDetails)

	gantt := make([]responses.GanttResponse, 0, len(result.Gantt))
	for _, g := range result.Gantt {
		gantt = append(gantt, responses.GanttResponse{
			ProcessName: g.ProcessName,
			Start:       g.Start,
			End:         g.End,
		})
	}

	metric := result.Metric
	return responses.ScheduleResponse{
		Algorithm:             string(result.Algorithm),
		TimeQuantum:           result.TimeQuantum,
		ProcessCount:          len(result.Processes),
		TotalTime:             metric.TotalTime,
		IdleTime:              metric.IdleTime,
		ContextSwitches:       metric.ContextSwitches,
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTimeAroundTime,
		CpuUtilization:        util.Ratio(float64(metric.UtilizationTime), float64(metric.TotalTime)),
		CpuThroughput:         util.Ratio(float64(len(result.Processes)), float64(metric.TotalTime)),
		Gantt:                 gantt,
		Details:               proccessDetails,
	}
}

func generateProcessDetails(result Result) []responses.ProcessResponse {
	details := make([]responses.ProcessResponse, 0, len(result.Processes))
	for _, p := range result.Processes {
		details = append(details, responses.ProcessResponse{
			Name:           p.Name,
			BurstTime:      p.BurstTime,
			WaitingTime:    p.WaitingTime,
			TurnAroundTime: p.TurnaroundTime,
			CompletionTime: p.CompletionTime,
			ResponseTime:   p.ResponseTime,
		})
	}
	return details
}
