package usecase

import (
	"context"
	"errors"

	"github.com/xavierca1/leadboard/internal/entity"
)


// UpdateLeadUseCase applies the inline edits the dashboard offers:
// status change, follow-up scheduling and customer comment edits.
// Each is a partial merge into the stored record, never a full rewrite.
type UpdateLeadUseCase struct {
	LeadRepo entity.LeadRepositoryInterface
}


func NewUpdateLeadUseCase(leadRepo entity.LeadRepositoryInterface) *UpdateLeadUseCase {
	return &UpdateLeadUseCase{LeadRepo: leadRepo}
}


func (uc *UpdateLeadUseCase) ChangeStatus(ctx context.Context, session Session, leadID, status string) error {
	if status == "" {
		return NewFormatError("lead_status is required")
	}
	return uc.patch(ctx, session, leadID, map[string]string{
		"lead_status": status,
	})
}


func (uc *UpdateLeadUseCase) ScheduleFollowUp(ctx context.Context, session Session, leadID, date, timeOfDay string) error {
	if date == "" {
		return NewFormatError("followUpDate is required")
	}
	return uc.patch(ctx, session, leadID, map[string]string{
		"follow_up_date": date,
		"follow_up_time": timeOfDay,
		"reminder_sent":  "false", // rescheduling re-arms the reminder
	})
}


func (uc *UpdateLeadUseCase) EditCustomerComment(ctx context.Context, session Session, leadID, comment string) error {
	return uc.patch(ctx, session, leadID, map[string]string{
		"customer_comment": comment,
	})
}


func (uc *UpdateLeadUseCase) patch(ctx context.Context, session Session, leadID string, fields map[string]string) error {
	namespace, err := session.Namespace()
	if err != nil {
		return err
	}
	if leadID == "" {
		return NewNotFoundError("lead id is required")
	}

	if err := uc.LeadRepo.UpdatePartial(ctx, namespace, leadID, fields); err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return NewNotFoundError("lead " + leadID + " not found")
		}
		return NewPersistError("failed to update lead", err)
	}
	return nil
}
