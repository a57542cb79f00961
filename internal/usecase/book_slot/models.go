package book_slot

import "github.com/Narayana2527/health-safari-apis/internal/domain"

// Request модель запроса на бронирование слота
type Request struct {
	DoctorName string             // Имя врача (точное совпадение)
	Date       string             // Дата приема, как в документе (например, "2024-05-01")
	TimeLabel  string             // Время слота (например, "10:00")
	Patient    domain.PatientInfo // Данные пациента, все пять полей обязательны
}

// Response модель ответа с подтверждением бронирования
type Response struct {
	DoctorName string
	Date       string
	TimeLabel  string
	Message    string // Текст подтверждения для клиента
}
