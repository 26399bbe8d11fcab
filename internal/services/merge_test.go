package services

import (
	"testing"
	"time"

	"github.com/sbilibin2017/job-listings/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergePatch_Job(t *testing.T) {
	dst := sampleJob()
	patch := models.Job{
		Location: "Berlin",
		Company:  models.Company{Name: "Globex"},
	}

	require.NoError(t, mergePatch(&dst, patch))

	want := sampleJob()
	want.Location = "Berlin"
	want.Company.Name = "Globex"
	assert.Equal(t, want, dst)
}

func TestMergePatch_Date(t *testing.T) {
	dst := sampleUser()
	require.NoError(t, mergePatch(&dst, models.User{}))
	assert.Equal(t, sampleUser(), dst)

	newDate := models.NewDate(2000, time.January, 15)
	require.NoError(t, mergePatch(&dst, models.User{DateOfBirth: newDate}))
	assert.Equal(t, newDate, dst.DateOfBirth)
}
