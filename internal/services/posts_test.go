package services

import (
	"fmt"
	"testing"

	"github.com/rayagrigorova/pawfinder/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func updateRequestFor(post *models.AdoptionPost, stage string) models.UpdatePostRequest {
	return models.UpdatePostRequest{
		Name:          post.Name,
		Age:           post.Age,
		Gender:        post.Gender,
		Breed:         post.Breed,
		Description:   post.Description,
		Size:          post.Size,
		AdoptionStage: stage,
	}
}

func TestCreatePostForcesOwnShelter(t *testing.T) {
	db := setupTestDB(t)
	svc := newPostService(db)
	user, shelter := createShelterUser(t, db, "shelteruser")

	post, err := svc.CreatePost(user, models.CreatePostRequest{
		Name:   "kucho",
		Age:    4,
		Gender: models.GenderMale,
		Breed:  "mixed",
		Size:   "XL",
	})
	require.NoError(t, err)

	assert.Equal(t, shelter.ID, post.ShelterID)
	assert.Equal(t, models.StageActive, post.AdoptionStage, "stage defaults to active")
}

func TestCreatePostDeniedForOrdinaryUser(t *testing.T) {
	db := setupTestDB(t)
	svc := newPostService(db)
	user := createUser(t, db, "ordinaryuser", models.RoleOrdinary)

	_, err := svc.CreatePost(user, models.CreatePostRequest{
		Name:   "kucho",
		Age:    4,
		Gender: models.GenderMale,
		Breed:  "mixed",
		Size:   "M",
	})
	assert.ErrorIs(t, err, ErrForbidden)

	var count int64
	db.Model(&models.AdoptionPost{}).Count(&count)
	assert.Zero(t, count)
}

func TestUpdatePostOwnershipDenied(t *testing.T) {
	db := setupTestDB(t)
	svc := newPostService(db)
	_, shelter := createShelterUser(t, db, "shelter1")
	otherShelterUser, _ := createShelterUser(t, db, "shelter2")
	ordinaryUser := createUser(t, db, "ordinaryuser", models.RoleOrdinary)

	post := createPost(t, db, shelter.ID, "doggo", models.StageActive)

	for _, actor := range []*models.User{otherShelterUser, ordinaryUser} {
		_, err := svc.UpdatePost(actor, post.ID, updateRequestFor(post, models.StageActive))
		assert.ErrorIs(t, err, ErrForbidden)
	}

	var unchanged models.AdoptionPost
	require.NoError(t, db.First(&unchanged, post.ID).Error)
	assert.Equal(t, "doggo", unchanged.Name)
}

func TestDeletePostOwnership(t *testing.T) {
	db := setupTestDB(t)
	svc := newPostService(db)
	owner, shelter := createShelterUser(t, db, "shelter1")
	otherShelterUser, _ := createShelterUser(t, db, "shelter2")
	post := createPost(t, db, shelter.ID, "doggo", models.StageActive)

	err := svc.DeletePost(otherShelterUser, post.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	var count int64
	db.Model(&models.AdoptionPost{}).Where("id = ?", post.ID).Count(&count)
	assert.EqualValues(t, 1, count)

	require.NoError(t, svc.DeletePost(owner, post.ID))
	db.Model(&models.AdoptionPost{}).Where("id = ?", post.ID).Count(&count)
	assert.Zero(t, count)
}

func TestStageTransitionNotifies(t *testing.T) {
	cases := []struct {
		previous, next string
		want           bool
	}{
		{models.StageInProcess, models.StageActive, true},
		{models.StageActive, models.StageActive, false},
		{models.StageActive, models.StageInProcess, false},
		{models.StageCompleted, models.StageActive, false},
		{models.StageInProcess, models.StageCompleted, false},
		{models.StageActive, models.StageCompleted, false},
	}
	for _, tc := range cases {
		t.Run(tc.previous+"_to_"+tc.next, func(t *testing.T) {
			assert.Equal(t, tc.want, StageTransitionNotifies(tc.previous, tc.next))
		})
	}
}

func TestUpdatePostFanout(t *testing.T) {
	db := setupTestDB(t)
	svc := newPostService(db)
	owner, shelter := createShelterUser(t, db, "shelter1")
	sub1 := createUser(t, db, "watcher1", models.RoleOrdinary)
	sub2 := createUser(t, db, "watcher2", models.RoleOrdinary)

	post := createPost(t, db, shelter.ID, "Sharko", models.StageInProcess)
	require.NoError(t, db.Create(&models.Subscription{UserID: sub1.ID, PostID: post.ID, IsActive: true}).Error)
	require.NoError(t, db.Create(&models.Subscription{UserID: sub2.ID, PostID: post.ID, IsActive: true}).Error)

	updated, err := svc.UpdatePost(owner, post.ID, updateRequestFor(post, models.StageActive))
	require.NoError(t, err)
	assert.Equal(t, models.StageActive, updated.AdoptionStage)

	var notifications []models.Notification
	require.NoError(t, db.Order("recipient_id").Find(&notifications).Error)
	require.Len(t, notifications, 2, "one notification per subscriber")

	recipients := []uint{notifications[0].RecipientID, notifications[1].RecipientID}
	assert.Equal(t, []uint{sub1.ID, sub2.ID}, recipients)

	for _, n := range notifications {
		assert.Equal(t, post.ID, n.PostID)
		assert.False(t, n.IsRead)
		assert.Contains(t, n.Message, "Sharko")
		assert.Contains(t, n.Message, fmt.Sprintf("/dogs/%d", post.ID))
	}
}

func TestUpdatePostNoFanoutForOtherTransitions(t *testing.T) {
	db := setupTestDB(t)
	svc := newPostService(db)
	owner, shelter := createShelterUser(t, db, "shelter1")
	watcher := createUser(t, db, "watcher", models.RoleOrdinary)

	post := createPost(t, db, shelter.ID, "doggo", models.StageActive)
	require.NoError(t, db.Create(&models.Subscription{UserID: watcher.ID, PostID: post.ID, IsActive: true}).Error)

	// active -> completed is silent even with subscribers present.
	_, err := svc.UpdatePost(owner, post.ID, updateRequestFor(post, models.StageCompleted))
	require.NoError(t, err)

	var count int64
	db.Model(&models.Notification{}).Count(&count)
	assert.Zero(t, count)
}

func TestUpdatePostFanoutOnlyToSubscribersOfThatPost(t *testing.T) {
	db := setupTestDB(t)
	svc := newPostService(db)
	owner, shelter := createShelterUser(t, db, "shelter1")
	watcher := createUser(t, db, "watcher", models.RoleOrdinary)

	watched := createPost(t, db, shelter.ID, "watched", models.StageInProcess)
	other := createPost(t, db, shelter.ID, "other", models.StageInProcess)
	require.NoError(t, db.Create(&models.Subscription{UserID: watcher.ID, PostID: other.ID, IsActive: true}).Error)

	_, err := svc.UpdatePost(owner, watched.ID, updateRequestFor(watched, models.StageActive))
	require.NoError(t, err)

	var count int64
	db.Model(&models.Notification{}).Count(&count)
	assert.Zero(t, count, "subscribers of other posts are not notified")
}
