package web

import (
	"net/http"

	"github.com/campverse/campverse/internal/model"
)

// Course is a read-only course catalog row.
type Course struct {
	Code       string
	Name       string
	Instructor string
	Credits    int
}

// TimetableSlot is a read-only timetable row.
type TimetableSlot struct {
	Day     string
	Time    string
	Subject string
	Room    string
}

// Static campus data; the college view only displays, never mutates.
var courses = []Course{
	{Code: "CS101", Name: "Introduction to Programming", Instructor: "Prof. Sarah Jenkins", Credits: 4},
	{Code: "CS201", Name: "Data Structures", Instructor: "Prof. Sarah Jenkins", Credits: 4},
	{Code: "MA102", Name: "Linear Algebra", Instructor: "Dr. Alan Mehta", Credits: 3},
	{Code: "PH105", Name: "Engineering Physics", Instructor: "Dr. Rita Kapoor", Credits: 3},
}

var timetable = []TimetableSlot{
	{Day: "Monday", Time: "09:00", Subject: "CS101", Room: "A-204"},
	{Day: "Monday", Time: "11:00", Subject: "MA102", Room: "B-101"},
	{Day: "Tuesday", Time: "10:00", Subject: "CS201", Room: "A-204"},
	{Day: "Wednesday", Time: "09:00", Subject: "PH105", Room: "Lab-2"},
	{Day: "Thursday", Time: "14:00", Subject: "CS101", Room: "A-204"},
}

// CollegePage handles GET /college (read-only display).
func (s *Server) CollegePage(w http.ResponseWriter, r *http.Request) {
	user := GetSessionUser(r.Context())

	s.Templates.Render(w, "college.html", &struct {
		PageData
		Courses   []Course
		Timetable []TimetableSlot
		IsStudent bool
	}{
		PageData:  pageData("College Mgmt", user, model.ViewCollege),
		Courses:   courses,
		Timetable: timetable,
		IsStudent: user.Role == model.RoleStudent,
	})
}
