package dto

// ScheduleMeetingRequest is submitted by a mentor to create a meeting series.
// When MeetingDates is empty the server plans dates from CommencementDate,
// EndDate, PreferredDay and NumberOfMeetings, filling any shortfall from CustomDates.
type ScheduleMeetingRequest struct {
	MentorUserID     string   `json:"mentor_user_id" validate:"required"`
	MenteeUserIDs    []string `json:"mentee_user_ids" validate:"required,min=1,dive,required"`
	MeetingDates     []string `json:"meeting_dates"`
	MeetingTime      string   `json:"meeting_time" validate:"required"`
	DurationMinutes  int      `json:"duration_minutes" validate:"required,min=1,max=600"`
	Platform         string   `json:"platform" validate:"required"`
	MeetingLink      string   `json:"meeting_link" validate:"omitempty,url"`
	Agenda           string   `json:"agenda"`
	PreferredDay     string   `json:"preferred_day"`
	NumberOfMeetings int      `json:"number_of_meetings" validate:"required,min=1"`
	PhaseID          string   `json:"phaseId"`
	CommencementDate string   `json:"commencement_date"`
	EndDate          string   `json:"end_date"`
	CustomDates      []string `json:"custom_dates"`
}

// UpdateMeetingRequest edits the date and time of one occurrence.
type UpdateMeetingRequest struct {
	MeetingDate string `json:"meeting_date" validate:"required"`
	MeetingTime string `json:"meeting_time" validate:"required"`
}

// PreviewDatesRequest asks the generator for a date plan without persisting.
type PreviewDatesRequest struct {
	CommencementDate string `json:"commencement_date" validate:"required"`
	EndDate          string `json:"end_date" validate:"required"`
	PreferredDay     string `json:"preferred_day" validate:"required"`
	NumberOfMeetings int    `json:"number_of_meetings" validate:"required,min=1"`
}

// PreviewDatesResponse lists generated dates and how many custom dates are still required.
type PreviewDatesResponse struct {
	Dates     []string `json:"dates"`
	Shortfall int      `json:"shortfall"`
}
