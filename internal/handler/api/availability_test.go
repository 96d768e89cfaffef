//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"lesson-scheduler/internal/domain/user"
	"lesson-scheduler/internal/handler/api"
	reqdto "lesson-scheduler/internal/handler/dto/request"
	resdto "lesson-scheduler/internal/handler/dto/response"
	"lesson-scheduler/internal/usecase/commands"
	"lesson-scheduler/tests/common/httptest"
	"lesson-scheduler/tests/common/testutil"
	commandsmock "lesson-scheduler/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockScheduleCommands
	handler      *api.AvailabilityHandler
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockScheduleCommands(s.mockCtrl)
	s.handler = api.NewAvailabilityHandler(s.mockCommands)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("user_role", user.RoleTrainer)
		c.Next()
	}

	s.router.POST("/availability/slots", authMiddleware, s.handler.SaveSlot)
	s.router.POST("/availability/rules", authMiddleware, s.handler.ApplyRule)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func saveSlotRequestDTO() reqdto.SaveSlotRequest {
	return reqdto.SaveSlotRequest{
		TrainerID: uuid.New(),
		Day:       "2025-03-03",
		StartTime: 1740993300, // 2025-03-03 09:15 UTC
		EndTime:   1740996000, // 2025-03-03 10:00 UTC
		Status:    "open",
	}
}

func applyRuleRequestDTO() reqdto.ApplyRuleRequest {
	return reqdto.ApplyRuleRequest{
		TrainerID:      uuid.New(),
		Weekdays:       []int{1, 3, 5},
		DailyStartHour: 9,
		DailyEndHour:   17,
		StartDate:      "2025-03-03",
		Status:         "open",
	}
}

// ================================================================================
// TestSaveSlot
// ================================================================================

func (s *AvailabilityHandlerTestSuite) TestSaveSlot() {
	url := "/availability/slots"
	reqBody := saveSlotRequestDTO()
	slotID := uuid.New()

	s.Run("success: returns 201 Created with slot ID", func() {
		s.mockCommands.EXPECT().SaveSingleSlot(gomock.Any(), gomock.Any()).
			Return(slotID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.SlotSavedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(slotID, response.SlotID)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: trainer_id (required)", mutate: testutil.Field("trainer_id", nil)},
			{name: "missing field: day (required)", mutate: testutil.Field("day", nil)},
			{name: "missing field: status (required)", mutate: testutil.Field("status", nil)},
			{name: "malformed day", mutate: testutil.Field("day", "03/03/2025")},
			{name: "unknown status", mutate: testutil.Field("status", "tentative")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid slot",
				commandsError:  commands.ErrInvalidSlot,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Invalid slot",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().SaveSingleSlot(gomock.Any(), gomock.Any()).
					Return(uuid.Nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestApplyRule
// ================================================================================

func (s *AvailabilityHandlerTestSuite) TestApplyRule() {
	url := "/availability/rules"
	reqBody := applyRuleRequestDTO()
	jobID := uuid.New()

	s.Run("success: returns 202 Accepted with job ID", func() {
		s.mockCommands.EXPECT().ApplyRecurringRule(gomock.Any(), gomock.Any()).
			Return(jobID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.RuleAcceptedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusAccepted, &response)
		s.Equal(jobID, response.JobID)
	})

	s.Run("success: passes parsed params to the command", func() {
		s.mockCommands.EXPECT().ApplyRecurringRule(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, params commands.ApplyRecurringRuleParams) (uuid.UUID, error) {
				s.Equal(reqBody.TrainerID, params.TrainerID)
				s.Len(params.Weekdays, 3)
				s.Equal(9, params.DailyStartHour)
				s.Equal(17, params.DailyEndHour)
				s.Equal("2025-03-03", params.StartDate.Format("2006-01-02"))
				s.Nil(params.EndDate)
				return jobID, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusAccepted, nil)
	})

	s.Run("success: duplicate weekdays collapse to a set", func() {
		s.mockCommands.EXPECT().ApplyRecurringRule(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, params commands.ApplyRecurringRuleParams) (uuid.UUID, error) {
				s.Equal([]time.Weekday{time.Monday, time.Wednesday}, params.Weekdays)
				return jobID, nil
			}).Times(1)

		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("weekdays", []int{1, 1, 3, 3, 3}))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusAccepted, nil)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: trainer_id (required)", mutate: testutil.Field("trainer_id", nil)},
			{name: "missing field: weekdays (required)", mutate: testutil.Field("weekdays", nil)},
			{name: "missing field: start_date (required)", mutate: testutil.Field("start_date", nil)},
			{name: "weekday above range", mutate: testutil.Field("weekdays", []int{9})},
			{name: "negative weekday", mutate: testutil.Field("weekdays", []int{-1, 2})},
			{name: "malformed start_date", mutate: testutil.Field("start_date", "March 3rd")},
			{name: "malformed end_date", mutate: testutil.Field("end_date", "03/04/2025")},
			{name: "unknown status", mutate: testutil.Field("status", "tentative")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 422 Unprocessable Entity for invalid rule", func() {
		s.mockCommands.EXPECT().ApplyRecurringRule(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, commands.ErrInvalidRule).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Invalid rule")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}
