package inmemdb

import (
	"github.com/ChiranjeeviNanda/joineasy-task2/core/submission"
)

type AcknowledgmentRepository struct {
	db *ackTable
}

var _ submission.Repository = (*AcknowledgmentRepository)(nil)

func NewAcknowledgmentRepository(db *DB) *AcknowledgmentRepository {
	return &AcknowledgmentRepository{db: db.ack}
}

func (repo *AcknowledgmentRepository) CreateAcknowledgment(ack submission.Acknowledgment) (submission.Acknowledgment, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.table = append(repo.db.table, &ack)
	return ack, nil
}

func (repo *AcknowledgmentRepository) GetAcknowledgment(assignmentID, submitterID string) (submission.Acknowledgment, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, ack := range repo.db.table {
		if ack.AssignmentID == assignmentID && ack.SubmitterID == submitterID {
			return *ack, nil
		}
	}
	return submission.Acknowledgment{}, submission.ErrNotFound
}

func (repo *AcknowledgmentRepository) QueryAcknowledgmentsByAssignment(assignmentID string) ([]submission.Acknowledgment, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	acks := make([]submission.Acknowledgment, 0)
	for _, ack := range repo.db.table {
		if ack.AssignmentID == assignmentID {
			acks = append(acks, *ack)
		}
	}
	return acks, nil
}

func (repo *AcknowledgmentRepository) DeleteAcknowledgmentsByAssignment(assignmentID string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	kept := repo.db.table[:0]
	for _, ack := range repo.db.table {
		if ack.AssignmentID != assignmentID {
			kept = append(kept, ack)
		}
	}
	repo.db.table = kept
	return nil
}
