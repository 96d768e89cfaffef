//go:build e2e

package availability_test

import (
	"net/http"
	"testing"
	"time"

	"lesson-scheduler/internal/domain/user"
	"lesson-scheduler/internal/handler/dto/request"
	resdto "lesson-scheduler/internal/handler/dto/response"
	"lesson-scheduler/tests/common/authtest"
	"lesson-scheduler/tests/common/dbtest"
	"lesson-scheduler/tests/common/httptest"
	"lesson-scheduler/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	slotsURL = "/api/availability/slots"
	rulesURL = "/api/availability/rules"
)

type availabilitySuite struct {
	e2e.SharedSuite

	trainerID uuid.UUID
	token     string
}

func TestAvailabilitySuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(availabilitySuite))
}

func (s *availabilitySuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	s.trainerID = dbtest.CreateTestTrainer(s.T(), s.DB, "山田トレーナー")
	s.token = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "trainer@example.com", string(user.RoleTrainer), &s.trainerID)
}

func (s *availabilitySuite) TestSaveSlot() {
	s.Run("スロットが時間境界に正規化されて保存されること", func() {
		t := s.T()

		// 9:15 開始を指定しても 9:00-10:00 に正規化される
		start := time.Date(2025, 3, 3, 9, 15, 0, 0, time.UTC)
		reqBody := request.SaveSlotRequest{
			TrainerID: s.trainerID,
			Day:       "2025-03-03",
			StartTime: start.Unix(),
			EndTime:   start.Add(45 * time.Minute).Unix(),
			Status:    "open",
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, slotsURL, reqBody, s.token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var res resdto.SlotSavedResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.NotEqual(t, uuid.Nil, res.SlotID)

		var startTime, endTime time.Time
		var status string
		err := s.DB.QueryRow(t.Context(),
			"SELECT start_time, end_time, status FROM schedule_slots WHERE id = $1", res.SlotID).
			Scan(&startTime, &endTime, &status)
		require.NoError(t, err)
		require.Equal(t, 9, startTime.UTC().Hour())
		require.Equal(t, 0, startTime.UTC().Minute())
		require.Equal(t, 10, endTime.UTC().Hour())
		require.Equal(t, "open", status)
	})

	s.Run("同一トレーナー・同一開始時刻のスロットは上書きされること", func() {
		t := s.T()

		start := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
		reqBody := request.SaveSlotRequest{
			TrainerID: s.trainerID,
			Day:       "2025-03-03",
			StartTime: start.Unix(),
			EndTime:   start.Add(time.Hour).Unix(),
			Status:    "open",
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, slotsURL, reqBody, s.token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		// 同じ開始時刻で unavailable に変更
		reqBody.Status = "unavailable"
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, slotsURL, reqBody, s.token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var count int
		err := s.DB.QueryRow(t.Context(),
			"SELECT COUNT(*) FROM schedule_slots WHERE trainer_id = $1", s.trainerID).Scan(&count)
		require.NoError(t, err)
		require.Equal(t, 1, count, "スロットが重複して作成されている")

		var status string
		err = s.DB.QueryRow(t.Context(),
			"SELECT status FROM schedule_slots WHERE trainer_id = $1", s.trainerID).Scan(&status)
		require.NoError(t, err)
		require.Equal(t, "unavailable", status)
	})

	s.Run("不正なステータスは拒否されること", func() {
		t := s.T()

		start := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
		reqBody := request.SaveSlotRequest{
			TrainerID: s.trainerID,
			Day:       "2025-03-03",
			StartTime: start.Unix(),
			EndTime:   start.Add(time.Hour).Unix(),
			Status:    "tentative",
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, slotsURL, reqBody, s.token)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})
}

func (s *availabilitySuite) TestApplyRule() {
	s.Run("ルールがジョブキューに登録されること", func() {
		t := s.T()

		reqBody := request.ApplyRuleRequest{
			TrainerID:      s.trainerID,
			Weekdays:       []int{1, 3, 5},
			DailyStartHour: 9,
			DailyEndHour:   17,
			StartDate:      "2025-03-03",
			Status:         "open",
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, rulesURL, reqBody, s.token)
		require.Equal(t, http.StatusAccepted, w.Code, w.Body.String())

		var res resdto.RuleAcceptedResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))

		var kind string
		var payload map[string]any
		err := s.DB.QueryRow(t.Context(),
			"SELECT kind, payload FROM schedule_jobs WHERE id = $1", res.JobID).
			Scan(&kind, &payload)
		require.NoError(t, err)
		require.Equal(t, "expand_recurring_rule", kind)
		require.Equal(t, "2025-03-03", payload["start_date"])
		// 終了日未指定・非継続なら申請時点から1ヶ月がデフォルト
		require.Equal(t, "2025-04-03", payload["end_date"])
		require.Equal(t, float64(9), payload["daily_start_hour"])
		require.Equal(t, float64(17), payload["daily_end_hour"])
	})

	s.Run("継続ルールは終了日なしで登録されること", func() {
		t := s.T()

		reqBody := request.ApplyRuleRequest{
			TrainerID:      s.trainerID,
			Weekdays:       []int{2},
			DailyStartHour: 10,
			DailyEndHour:   12,
			StartDate:      "2025-03-03",
			Ongoing:        true,
			Status:         "open",
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, rulesURL, reqBody, s.token)
		require.Equal(t, http.StatusAccepted, w.Code, w.Body.String())

		var res resdto.RuleAcceptedResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))

		var payload map[string]any
		err := s.DB.QueryRow(t.Context(),
			"SELECT payload FROM schedule_jobs WHERE id = $1", res.JobID).Scan(&payload)
		require.NoError(t, err)
		require.Nil(t, payload["end_date"])
	})

	s.Run("曜日未選択のルールは拒否されること", func() {
		t := s.T()

		reqBody := request.ApplyRuleRequest{
			TrainerID:      s.trainerID,
			Weekdays:       []int{},
			DailyStartHour: 9,
			DailyEndHour:   17,
			StartDate:      "2025-03-03",
			Status:         "open",
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, rulesURL, reqBody, s.token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())

		var count int
		err := s.DB.QueryRow(t.Context(), "SELECT COUNT(*) FROM schedule_jobs").Scan(&count)
		require.NoError(t, err)
		require.Zero(t, count, "不正なルールがキューに登録されている")
	})
}
