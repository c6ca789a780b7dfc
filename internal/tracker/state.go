// Package tracker holds the time-tracking state and the operations over it.
//
// State is an immutable snapshot: every operation in this file takes a State
// and returns a new one, never modifying the slices it was given. Store wraps
// these functions with a current snapshot and change subscriptions.
package tracker

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"ttrack/internal/models"
	"ttrack/internal/util"
)

// Names displayed for entries whose project no longer exists
const (
	UnknownProject      = "Unknown"         // exports
	UnknownProjectLabel = "Unknown Project" // listings
)

// State is a snapshot of all projects and time entries, in insertion order
type State struct {
	Projects []models.Project
	Entries  []models.TimeEntry
}

func (st State) clone() State {
	return State{
		Projects: append([]models.Project(nil), st.Projects...),
		Entries:  append([]models.TimeEntry(nil), st.Entries...),
	}
}

// AddProject appends a project with trimmed name and description.
// An empty name leaves the state unchanged and returns ErrEmptyName.
func AddProject(st State, id, name, description string) (State, *models.Project, error) {
	p := models.Project{
		ID:          id,
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		IsActive:    true,
	}
	if err := p.Validate(); err != nil {
		return st, nil, err
	}

	next := st.clone()
	next.Projects = append(next.Projects, p)
	return next, &p, nil
}

// UpdateProject replaces the name and description of a project, keeping its id and active flag
func UpdateProject(st State, id, name, description string) (State, *models.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return st, nil, models.ErrEmptyName
	}

	idx := st.projectIndex(id)
	if idx == -1 {
		return st, nil, fmt.Errorf("%w: %s", models.ErrProjectNotFound, id)
	}

	next := st.clone()
	next.Projects[idx].Name = name
	next.Projects[idx].Description = strings.TrimSpace(description)
	p := next.Projects[idx]
	return next, &p, nil
}

// DeleteProject removes a project. Entries referencing it are kept.
func DeleteProject(st State, id string) (State, error) {
	idx := st.projectIndex(id)
	if idx == -1 {
		return st, fmt.Errorf("%w: %s", models.ErrProjectNotFound, id)
	}

	next := st.clone()
	next.Projects = append(next.Projects[:idx], next.Projects[idx+1:]...)
	return next, nil
}

// StartTimer appends a running entry for the project starting at now.
// A project may have at most one running entry, so a repeated start returns
// ErrTimerRunning instead of opening a second concurrent entry.
func StartTimer(st State, id, projectID string, now time.Time) (State, *models.TimeEntry, error) {
	if running := st.RunningEntry(projectID); running != nil {
		return st, running, fmt.Errorf("%w: %s", models.ErrTimerRunning, projectID)
	}

	e := models.TimeEntry{
		ID:            id,
		ProjectID:     projectID,
		StartDatetime: now,
		IsRunning:     true,
	}

	next := st.clone()
	next.Entries = append(next.Entries, e)
	return next, &e, nil
}

// StopTimer ends the first running entry of the project at now.
// It returns the stopped entry, or nil and the unchanged state if nothing was running.
func StopTimer(st State, projectID string, now time.Time) (State, *models.TimeEntry) {
	idx := st.runningIndex(projectID)
	if idx == -1 {
		return st, nil
	}

	next := st.clone()
	end := now
	next.Entries[idx].EndDatetime = &end
	next.Entries[idx].IsRunning = false
	e := next.Entries[idx]
	return next, &e
}

// SetNotes replaces the notes of an entry
func SetNotes(st State, entryID, notes string) (State, error) {
	idx := st.entryIndex(entryID)
	if idx == -1 {
		return st, fmt.Errorf("%w: %s", models.ErrEntryNotFound, entryID)
	}

	next := st.clone()
	next.Entries[idx].Notes = strings.TrimSpace(notes)
	return next, nil
}

// DeleteEntry removes a time entry, running or not
func DeleteEntry(st State, entryID string) (State, error) {
	idx := st.entryIndex(entryID)
	if idx == -1 {
		return st, fmt.Errorf("%w: %s", models.ErrEntryNotFound, entryID)
	}

	next := st.clone()
	next.Entries = append(next.Entries[:idx], next.Entries[idx+1:]...)
	return next, nil
}

// Project returns the project with the given id
func (st State) Project(id string) (*models.Project, bool) {
	idx := st.projectIndex(id)
	if idx == -1 {
		return nil, false
	}
	p := st.Projects[idx]
	return &p, true
}

// FindProject resolves a project by id, then by case-insensitive exact name
func (st State) FindProject(ref string) (*models.Project, error) {
	if p, ok := st.Project(ref); ok {
		return p, nil
	}

	var match *models.Project
	for i := range st.Projects {
		if strings.EqualFold(st.Projects[i].Name, strings.TrimSpace(ref)) {
			if match != nil {
				return nil, fmt.Errorf("%w: %s", models.ErrAmbiguousProject, ref)
			}
			p := st.Projects[i]
			match = &p
		}
	}
	if match == nil {
		return nil, fmt.Errorf("%w: %s", models.ErrProjectNotFound, ref)
	}
	return match, nil
}

// ProjectName returns the name of the project, or UnknownProject for orphaned ids
func (st State) ProjectName(id string) string {
	if p, ok := st.Project(id); ok {
		return p.Name
	}
	return UnknownProject
}

// ActiveProjects returns the projects flagged active, in insertion order
func (st State) ActiveProjects() []models.Project {
	var out []models.Project
	for _, p := range st.Projects {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out
}

// Entry returns the time entry with the given id
func (st State) Entry(id string) (*models.TimeEntry, bool) {
	idx := st.entryIndex(id)
	if idx == -1 {
		return nil, false
	}
	e := st.Entries[idx]
	return &e, true
}

// RunningEntry returns the first running entry of the project, or nil
func (st State) RunningEntry(projectID string) *models.TimeEntry {
	idx := st.runningIndex(projectID)
	if idx == -1 {
		return nil
	}
	e := st.Entries[idx]
	return &e
}

// RunningEntries returns every running entry in insertion order
func (st State) RunningEntries() []models.TimeEntry {
	var out []models.TimeEntry
	for _, e := range st.Entries {
		if e.IsRunning {
			out = append(out, e)
		}
	}
	return out
}

// TotalHours sums completed entries across all projects
func (st State) TotalHours() float64 {
	var sum float64
	for i := range st.Entries {
		sum += st.Entries[i].Hours()
	}
	return sum
}

// ProjectTotalHours sums completed entries of a single project
func (st State) ProjectTotalHours(projectID string) float64 {
	var sum float64
	for i := range st.Entries {
		if st.Entries[i].ProjectID == projectID {
			sum += st.Entries[i].Hours()
		}
	}
	return sum
}

// CompletedEntries returns stopped entries with an end time, newest start first
func (st State) CompletedEntries() []models.TimeEntry {
	var out []models.TimeEntry
	for _, e := range st.Entries {
		if e.Completed() {
			out = append(out, e)
		}
	}
	SortByStartDesc(out)
	return out
}

// ProjectEntries returns all entries of a project, running ones included, newest start first
func (st State) ProjectEntries(projectID string) []models.TimeEntry {
	var out []models.TimeEntry
	for _, e := range st.Entries {
		if e.ProjectID == projectID {
			out = append(out, e)
		}
	}
	SortByStartDesc(out)
	return out
}

// ElapsedTime formats how long an entry has run: its own span once stopped,
// start to now while running, "0h 0m" otherwise.
func ElapsedTime(e models.TimeEntry, now time.Time) string {
	switch {
	case e.Completed():
		return util.FormatDuration(e.Hours())
	case e.IsRunning:
		return util.FormatDuration(models.HoursBetween(e.StartDatetime, now))
	default:
		return util.FormatDuration(0)
	}
}

// SortByStartDesc orders entries by start time, newest first; ties keep insertion order
func SortByStartDesc(entries []models.TimeEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].StartDatetime.After(entries[j].StartDatetime)
	})
}

func (st State) projectIndex(id string) int {
	for i := range st.Projects {
		if st.Projects[i].ID == id {
			return i
		}
	}
	return -1
}

func (st State) entryIndex(id string) int {
	for i := range st.Entries {
		if st.Entries[i].ID == id {
			return i
		}
	}
	return -1
}

func (st State) runningIndex(projectID string) int {
	for i := range st.Entries {
		if st.Entries[i].ProjectID == projectID && st.Entries[i].IsRunning {
			return i
		}
	}
	return -1
}
