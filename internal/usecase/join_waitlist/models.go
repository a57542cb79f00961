package join_waitlist

import "github.com/Narayana2527/health-safari-apis/internal/domain"

// Request модель запроса на запись в лист ожидания
type Request struct {
	DoctorName string
	Date       string
	Patient    domain.PatientInfo
}

// Response модель ответа
type Response struct {
	DoctorName string
	Date       string
	Position   int // Номер записи в листе ожидания на эту дату, начиная с 1
	Message    string
}
