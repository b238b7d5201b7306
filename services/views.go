package services

import (
	"fmt"
	"math"
	"sort"

	"github.com/sfaraj/registrar/registry"
)

// SectionView is the JSON shape of one catalog section.
type SectionView struct {
	CRN            int      `json:"crn"`
	SectionNumber  int      `json:"section_number"`
	CourseMnemonic string   `json:"course_mnemonic"`
	CourseNumber   int      `json:"course_number"`
	CourseTitle    string   `json:"course_title"`
	CreditHours    int      `json:"credit_hours"`
	Term           string   `json:"term"`
	Year           int      `json:"year"`
	Building       string   `json:"building"`
	Room           string   `json:"room"`
	MeetingDays    []string `json:"meeting_days"`
	StartTime      string   `json:"start_time"`
	EndTime        string   `json:"end_time"`
	Lecturer       string   `json:"lecturer"`
	Status         string   `json:"status"`
	Enrolled       int      `json:"enrolled"`
	Capacity       int      `json:"capacity"`
	WaitListed     int      `json:"wait_listed"`
	WaitListCap    int      `json:"wait_list_capacity"`
}

// NewSectionView flattens a section for API responses.
func NewSectionView(section *registry.Section) SectionView {
	days := section.TimeSlot.Days()
	dayNames := make([]string, len(days))
	for i, d := range days {
		dayNames[i] = d.String()
	}

	lecturer := section.Lecturer.FirstName
	if section.Lecturer.LastName != "" {
		lecturer += " " + section.Lecturer.LastName
	}

	return SectionView{
		CRN:            section.CRN,
		SectionNumber:  section.SectionNumber,
		CourseMnemonic: section.Course.Mnemonic,
		CourseNumber:   section.Course.CourseNumber,
		CourseTitle:    section.Course.Title,
		CreditHours:    section.Course.CreditHours,
		Term:           string(section.Semester.Term),
		Year:           section.Semester.Year,
		Building:       section.Location.Building,
		Room:           section.Location.Room,
		MeetingDays:    dayNames,
		StartTime:      clock(section.TimeSlot.StartHour(), section.TimeSlot.StartMinute()),
		EndTime:        clock(section.TimeSlot.EndHour(), section.TimeSlot.EndMinute()),
		Lecturer:       lecturer,
		Status:         string(section.Status()),
		Enrolled:       section.EnrollmentSize(),
		Capacity:       section.EnrollmentCapacity(),
		WaitListed:     section.WaitListSize(),
		WaitListCap:    section.WaitListCapacity(),
	}
}

// ScheduleView is a student's current registrations.
type ScheduleView struct {
	StudentID  int64         `json:"student_id"`
	NetID      string        `json:"net_id"`
	Enrolled   []SectionView `json:"enrolled"`
	WaitListed []SectionView `json:"wait_listed"`
	CreditLoad int           `json:"credit_load"`
}

// NewScheduleView builds the schedule response. Credit load counts both
// enrolled and wait-listed sections, matching the registration limit.
func NewScheduleView(student *registry.Student) ScheduleView {
	view := ScheduleView{
		StudentID:  student.ID,
		NetID:      student.NetID,
		Enrolled:   []SectionView{},
		WaitListed: []SectionView{},
	}
	for _, section := range student.EnrolledSections() {
		view.Enrolled = append(view.Enrolled, NewSectionView(section))
		view.CreditLoad += section.Course.CreditHours
	}
	for _, section := range student.WaitListedSections() {
		view.WaitListed = append(view.WaitListed, NewSectionView(section))
		view.CreditLoad += section.Course.CreditHours
	}
	sortSections(view.Enrolled)
	sortSections(view.WaitListed)
	return view
}

// TranscriptLine is one graded section of a transcript.
type TranscriptLine struct {
	CRN            int    `json:"crn"`
	CourseMnemonic string `json:"course_mnemonic"`
	CourseNumber   int    `json:"course_number"`
	CourseTitle    string `json:"course_title"`
	CreditHours    int    `json:"credit_hours"`
	Term           string `json:"term"`
	Year           int    `json:"year"`
	Grade          string `json:"grade"`
}

// TranscriptView is a student's full grade history. GPA is null until
// the student has completed a GPA-bearing course.
type TranscriptView struct {
	StudentID   int64            `json:"student_id"`
	NetID       string           `json:"net_id"`
	Lines       []TranscriptLine `json:"lines"`
	GPA         *float64         `json:"gpa"`
	OnProbation bool             `json:"on_probation"`
}

// NewTranscriptView builds the transcript response.
func NewTranscriptView(student *registry.Student) TranscriptView {
	view := TranscriptView{
		StudentID:   student.ID,
		NetID:       student.NetID,
		Lines:       []TranscriptLine{},
		OnProbation: student.IsOnProbation(),
	}
	for section, grade := range student.Transcript.Entries() {
		view.Lines = append(view.Lines, TranscriptLine{
			CRN:            section.CRN,
			CourseMnemonic: section.Course.Mnemonic,
			CourseNumber:   section.Course.CourseNumber,
			CourseTitle:    section.Course.Title,
			CreditHours:    section.Course.CreditHours,
			Term:           string(section.Semester.Term),
			Year:           section.Semester.Year,
			Grade:          grade.String(),
		})
	}
	sort.Slice(view.Lines, func(i, j int) bool {
		if view.Lines[i].Year != view.Lines[j].Year {
			return view.Lines[i].Year < view.Lines[j].Year
		}
		return view.Lines[i].CRN < view.Lines[j].CRN
	})

	if gpa := student.GPA(); !math.IsNaN(gpa) {
		view.GPA = &gpa
	}
	return view
}

func sortSections(views []SectionView) {
	sort.Slice(views, func(i, j int) bool { return views[i].CRN < views[j].CRN })
}

func clock(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}
