package services

import (
	"testing"
	"time"

	"dayflow-app/dayflow/models"
	"dayflow-app/dayflow/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCreateReminder_Validation(t *testing.T) {
	db := testutils.SetupTestDB(t)
	user := createTestUser(t, db, "alice", "alice@x.com")
	service := &ReminderService{}

	_, err := service.CreateReminder(db, user.ID, ReminderInput{Title: "  ", ReminderTime: time.Now()})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = service.CreateReminder(db, user.ID, ReminderInput{Title: "Dentist"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	var count int64
	assert.NoError(t, db.DB.Model(&models.Reminder{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGetReminders_OrderedByTime(t *testing.T) {
	db := testutils.SetupTestDB(t)
	user := createTestUser(t, db, "alice", "alice@x.com")
	service := &ReminderService{}

	base := time.Now().Add(time.Hour).Truncate(time.Second)
	later, err := service.CreateReminder(db, user.ID, ReminderInput{Title: "later", ReminderTime: base.Add(2 * time.Hour)})
	assert.NoError(t, err)
	soon, err := service.CreateReminder(db, user.ID, ReminderInput{Title: "soon", ReminderTime: base})
	assert.NoError(t, err)

	reminders, err := service.GetReminders(db, user.ID)
	assert.NoError(t, err)
	if assert.Len(t, reminders, 2) {
		assert.Equal(t, soon.ID, reminders[0].ID)
		assert.Equal(t, later.ID, reminders[1].ID)
	}
}

func TestUpdateReminder_OwnerScoped(t *testing.T) {
	db := testutils.SetupTestDB(t)
	alice := createTestUser(t, db, "alice", "alice@x.com")
	bob := createTestUser(t, db, "bob", "bob@x.com")
	service := &ReminderService{}

	reminder, err := service.CreateReminder(db, bob.ID, ReminderInput{Title: "bob's", ReminderTime: time.Now().Add(time.Hour)})
	assert.NoError(t, err)

	_, err = service.UpdateReminder(db, alice.ID, reminder.ID, ReminderInput{Title: "hijack", ReminderTime: time.Now()})
	assert.ErrorIs(t, err, ErrReminderNotFound)

	_, err = service.UpdateReminder(db, alice.ID, uuid.New(), ReminderInput{Title: "ghost", ReminderTime: time.Now()})
	assert.ErrorIs(t, err, ErrReminderNotFound)
}

func TestSetCompletedReminder(t *testing.T) {
	db := testutils.SetupTestDB(t)
	alice := createTestUser(t, db, "alice", "alice@x.com")
	bob := createTestUser(t, db, "bob", "bob@x.com")
	service := &ReminderService{}

	reminder, err := service.CreateReminder(db, alice.ID, ReminderInput{Title: "Dentist", ReminderTime: time.Now().Add(time.Hour)})
	assert.NoError(t, err)

	assert.NoError(t, service.SetCompleted(db, alice.ID, reminder.ID, true))
	assert.ErrorIs(t, service.SetCompleted(db, bob.ID, reminder.ID, false), ErrReminderNotFound)

	var reloaded models.Reminder
	assert.NoError(t, db.DB.First(&reloaded, "id = ?", reminder.ID).Error)
	assert.True(t, reloaded.IsCompleted)
}

func TestDeleteReminder_Idempotent(t *testing.T) {
	db := testutils.SetupTestDB(t)
	user := createTestUser(t, db, "alice", "alice@x.com")
	service := &ReminderService{}

	reminder, err := service.CreateReminder(db, user.ID, ReminderInput{Title: "Dentist", ReminderTime: time.Now().Add(time.Hour)})
	assert.NoError(t, err)

	assert.NoError(t, service.DeleteReminder(db, user.ID, reminder.ID))
	assert.NoError(t, service.DeleteReminder(db, user.ID, reminder.ID))
}
