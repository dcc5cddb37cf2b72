package metrics

import (
	"strconv"
	"time"
)

func ms(d time.Duration) float64 { return float64(d) / float64(time.Millisecond) }

// RecordScore counts one computed score and its latency.
func (m *Manager) RecordScore(d time.Duration) {
	m.scoresComputed.Inc()
	m.scoreLatency.Observe(ms(d))
}

// RecordSalaryComparison counts a comparison; result is a classification or an error kind.
func (m *Manager) RecordSalaryComparison(result string) {
	m.salaryComparisons.WithLabelValues(result).Inc()
}

// RecordDegradedLookup counts a catalog lookup on an unknown identifier.
func (m *Manager) RecordDegradedLookup(kind string) {
	m.degradedLookups.WithLabelValues(kind).Inc()
}

// RecordAllocationUpdate counts a staffing mutation.
func (m *Manager) RecordAllocationUpdate() { m.allocationUpdates.Inc() }

// RecordStaffingProposal counts a proposal; outcome is "ok" or an error code.
func (m *Manager) RecordStaffingProposal(outcome string) {
	m.staffingProposals.WithLabelValues(outcome).Inc()
}

// UpdateRoster sets the roster gauges.
func (m *Manager) UpdateRoster(employees, projects, overloaded int) {
	m.rosterEmployees.Set(float64(employees))
	m.rosterProjects.Set(float64(projects))
	m.rosterOverloaded.Set(float64(overloaded))
}

// RecordArchivePush counts a push to target ("notion" or "local").
func (m *Manager) RecordArchivePush(target string, ok bool) {
	outcome := "success"
	if !ok {
		outcome = "failure"
	}
	m.archivePushes.WithLabelValues(target, outcome).Inc()
}

// RecordArchiveDuplicate counts an archive request skipped by the seen-set.
func (m *Manager) RecordArchiveDuplicate() { m.archiveDuplicates.Inc() }

// UpdateQueue sets the queue gauges.
func (m *Manager) UpdateQueue(size, capacity int) {
	m.queueSize.Set(float64(size))
	m.queueCapacity.Set(float64(capacity))
	if capacity > 0 {
		m.queueUtilization.Set(float64(size) / float64(capacity) * 100)
	}
}

func (m *Manager) RecordQueueEnqueue()  { m.queueEnqueued.Inc() }
func (m *Manager) RecordQueueDequeue()  { m.queueDequeued.Inc() }
func (m *Manager) RecordQueueRejected() { m.queueRejected.Inc() }

// UpdateWorkers sets the worker gauges.
func (m *Manager) UpdateWorkers(count, active int) {
	m.workerCount.Set(float64(count))
	m.workerActive.Set(float64(active))
}

// RecordWorkerJob observes one processed job.
func (m *Manager) RecordWorkerJob(d time.Duration, err error) {
	m.workerLatency.Observe(ms(d))
	if err != nil {
		m.workerErrors.Inc()
	}
}

// RecordHTTPRequest counts a request and observes its duration.
func (m *Manager) RecordHTTPRequest(endpoint, method string, status int, d time.Duration) {
	code := strconv.Itoa(status)
	m.httpRequests.WithLabelValues(endpoint, method, code).Inc()
	m.httpRequestDuration.WithLabelValues(endpoint, method, code).Observe(ms(d))
}

// RecordError counts an error against its component, type and severity.
func (m *Manager) RecordError(component, errorType, severity string) {
	m.errorsByComponent.WithLabelValues(component, errorType).Inc()
	m.errorsByType.WithLabelValues(errorType, severity).Inc()
}

// RecordEndpointError counts an HTTP error response.
func (m *Manager) RecordEndpointError(endpoint, method, errorType string) {
	m.errorsByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// UpdateSystem sets the runtime gauges and observes the last GC pause.
func (m *Manager) UpdateSystem(heapBytes uint64, goroutines int, lastPause time.Duration) {
	m.systemMemoryUsage.Set(float64(heapBytes))
	m.systemGoroutineCount.Set(float64(goroutines))
	if lastPause > 0 {
		m.systemGCPauseTime.Observe(ms(lastPause))
	}
}

// The functions below forward to the global manager.

func RecordScore(d time.Duration) {
	globalManager.RecordScore(d)
}

func RecordSalaryComparison(result string) {
	globalManager.RecordSalaryComparison(result)
}

func RecordDegradedLookup(kind string) {
	globalManager.RecordDegradedLookup(kind)
}

func RecordAllocationUpdate() {
	globalManager.RecordAllocationUpdate()
}

func RecordStaffingProposal(outcome string) {
	globalManager.RecordStaffingProposal(outcome)
}

func UpdateRoster(employees, projects, overloaded int) {
	globalManager.UpdateRoster(employees, projects, overloaded)
}

func RecordArchivePush(target string, ok bool) {
	globalManager.RecordArchivePush(target, ok)
}

func RecordArchiveDuplicate() {
	globalManager.RecordArchiveDuplicate()
}

func UpdateQueue(size, capacity int) {
	globalManager.UpdateQueue(size, capacity)
}

func RecordQueueEnqueue() {
	globalManager.RecordQueueEnqueue()
}

func RecordQueueDequeue() {
	globalManager.RecordQueueDequeue()
}

func RecordQueueRejected() {
	globalManager.RecordQueueRejected()
}

func UpdateWorkers(count, active int) {
	globalManager.UpdateWorkers(count, active)
}

func RecordWorkerJob(d time.Duration, err error) {
	globalManager.RecordWorkerJob(d, err)
}

func RecordHTTPRequest(endpoint, method string, status int, d time.Duration) {
	globalManager.RecordHTTPRequest(endpoint, method, status, d)
}

func RecordError(component, errorType, severity string) {
	globalManager.RecordError(component, errorType, severity)
}

func RecordEndpointError(endpoint, method, errorType string) {
	globalManager.RecordEndpointError(endpoint, method, errorType)
}

func UpdateSystem(heapBytes uint64, goroutines int, lastPause time.Duration) {
	globalManager.UpdateSystem(heapBytes, goroutines, lastPause)
}
