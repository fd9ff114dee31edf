// Package model contains the record shapes exchanged with the medical
// backend. These are pure data structures; field names follow the backend's
// JSON contract, which this layer consumes but does not own.
package model

// Consultation is one medical consultation in the patient's history.
type Consultation struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Doctor    string `json:"doctor"`
	Specialty string `json:"specialty"`
	Diagnosis string `json:"diagnosis"`
	Status    string `json:"status"`
}

// Medication is one prescribed medication.
type Medication struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Dosage       string `json:"dosage"`
	Frequency    string `json:"frequency"`
	PrescribedBy string `json:"prescribing_doctor"`
	Status       string `json:"status"`
}

// Exam is one medical exam record. FileURL is the backend's comma-delimited
// list of attachment URLs; it is parsed with attachment.Parse and never
// interpreted anywhere else. Exams are re-fetched after every mutation, not
// cached authoritatively.
type Exam struct {
	ID      string `json:"id"`
	Type    string `json:"exam_type"`
	Date    string `json:"date"`
	Results string `json:"results"`
	Lab     string `json:"lab"`
	Doctor  string `json:"doctor"`
	Status  string `json:"status"`
	FileURL string `json:"file_url"`
}

// FamilyMember is one emergency/family contact.
type FamilyMember struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
}

// DashboardStats is the aggregate header of the patient dashboard.
type DashboardStats struct {
	Consultations int `json:"consultations"`
	Medications   int `json:"medications"`
	HealthScore   int `json:"health_score"`
}

// TelegramStatus reports whether the user's account is linked to the
// Telegram bot.
type TelegramStatus struct {
	IsLinked     bool   `json:"is_linked"`
	TelegramID   string `json:"telegram_id,omitempty"`
	ExamsFromBot int    `json:"exams_from_bot,omitempty"`
}

// TelegramLink is the backend's acknowledgement of a link (or unlink)
// request.
type TelegramLink struct {
	UserName           string `json:"user_name,omitempty"`
	TelegramID         string `json:"telegram_id,omitempty"`
	ExamsFound         int    `json:"exams_found,omitempty"`
	WelcomeMessageSent bool   `json:"welcome_message_sent,omitempty"`
}

// PersonalProfile carries the editable personal-information form. JSON keys
// match the backend's field naming.
type PersonalProfile struct {
	FirstName string `json:"nombre"`
	LastName  string `json:"apellido"`
	BirthDate string `json:"fecha_nacimiento"`
	Gender    string `json:"genero"`
	Phone     string `json:"telefono"`
	Email     string `json:"email"`
	Address   string `json:"direccion"`
	City      string `json:"ciudad"`
}

// NotificationSetting toggles one notification preference.
type NotificationSetting struct {
	Setting string `json:"setting"`
	Enabled bool   `json:"enabled"`
}
