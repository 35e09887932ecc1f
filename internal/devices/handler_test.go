package devices

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/richxcame/fraudwatch/pkg/models"
)

func setupRouter(repo RepositoryInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(NewService(repo)).RegisterRoutes(r)
	return r
}

func TestHandler_ListDevices(t *testing.T) {
	device := deviceFixture()

	repo := new(MockRepository)
	repo.On("ListDevices", mock.Anything, 20, 0).Return([]models.Device{device}, int64(42), nil)

	router := setupRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/devices", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool            `json:"success"`
		Data    []models.Device `json:"data"`
		Meta    struct {
			Limit      int   `json:"limit"`
			Offset     int   `json:"offset"`
			Total      int64 `json:"total"`
			TotalPages int   `json:"total_pages"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, device.DeviceHash, resp.Data[0].DeviceHash)
	assert.Equal(t, int64(42), resp.Meta.Total)
	assert.Equal(t, 20, resp.Meta.Limit)
}

func TestHandler_ListDevices_WithPagination(t *testing.T) {
	repo := new(MockRepository)
	repo.On("ListDevices", mock.Anything, 5, 10).Return([]models.Device{}, int64(0), nil)

	router := setupRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/devices?limit=5&offset=10", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	repo.AssertExpectations(t)
}

func TestHandler_ListDevices_HashFilter(t *testing.T) {
	device := deviceFixture()

	repo := new(MockRepository)
	repo.On("GetDeviceByHash", mock.Anything, device.DeviceHash).Return(&device, nil)

	router := setupRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/devices?hash="+device.DeviceHash, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data models.Device `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, device.ID, resp.Data.ID)

	repo.AssertNotCalled(t, "ListDevices", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_GetDevice(t *testing.T) {
	device := deviceFixture()

	repo := new(MockRepository)
	repo.On("GetDeviceByID", mock.Anything, device.ID).Return(&device, nil)

	router := setupRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/devices/"+device.ID.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_GetDevice_InvalidID(t *testing.T) {
	router := setupRouter(new(MockRepository))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/devices/not-a-uuid", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetDevice_NotFound(t *testing.T) {
	id := uuid.New()

	repo := new(MockRepository)
	repo.On("GetDeviceByID", mock.Anything, id).Return(nil, nil)

	router := setupRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/devices/"+id.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
