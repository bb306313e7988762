package get_store_appointments

import (
	"strconv"
	"time"

	"github.com/avoropay/Agenda-SchedulingService/internal/domain"
	"github.com/avoropay/Agenda-SchedulingService/internal/service/appointments/models"
)

// ToServiceRequest собирает запрос к сервису из path и query параметров
// Все фильтры опциональны. Параметр date задает период в один день,
// startDate/endDate - произвольный период (date и период несовместимы)
func ToServiceRequest(storeID, userID int64, professionalIDStr, statusStr, dateStr, startDateStr, endDateStr, includeInactiveStr string) (*models.GetStoreAppointmentsRequest, error) {
	req := &models.GetStoreAppointmentsRequest{
		StoreID: storeID,
		UserID:  userID,
	}

	if professionalIDStr != "" {
		professionalID, err := strconv.ParseInt(professionalIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.ProfessionalID = &professionalID
	}

	if statusStr != "" {
		req.Status = &statusStr
	}

	// Одиночная дата транслируется в период из одного дня
	if dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &date
		req.EndDate = &date
	} else {
		if startDateStr != "" {
			startDate, err := time.Parse(domain.DateFormat, startDateStr)
			if err != nil {
				return nil, err
			}
			req.StartDate = &startDate
		}
		if endDateStr != "" {
			endDate, err := time.Parse(domain.DateFormat, endDateStr)
			if err != nil {
				return nil, err
			}
			req.EndDate = &endDate
		}
	}

	if includeInactiveStr != "" {
		includeInactive, err := strconv.ParseBool(includeInactiveStr)
		if err != nil {
			return nil, err
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
