package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MercTechs/AttPortal/config"
	"github.com/MercTechs/AttPortal/models"
	"github.com/MercTechs/AttPortal/routes"
	"github.com/MercTechs/AttPortal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testAccessCode = "secret"

// vendorStub 模拟考勤机平台的单入口POST接口
type vendorStub struct {
	mu         sync.Mutex
	attendance []services.VendorAttendanceRecord
	devices    []services.VendorDevice
	employees  []services.VendorEmployee
	failReason string

	lastCommand string
}

func (s *vendorStub) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			User  string   `json:"user"`
			Pass  string   `json:"pass"`
			Name  string   `json:"name"`
			Param []string `json:"param"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		s.mu.Lock()
		s.lastCommand = req.Name
		failReason := s.failReason
		s.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		if failReason != "" {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"result": "error",
				"reason": failReason,
			})
			return
		}

		var rows interface{}
		switch req.Name {
		case "API_AttendanceList":
			rows = s.attendance
		case "API_DeviceList":
			rows = s.devices
		case "API_EmployeeListByDevices":
			rows = s.employees
		default:
			json.NewEncoder(w).Encode(map[string]interface{}{
				"result": "error",
				"reason": "unknown command",
			})
			return
		}

		// data 是列表的列表，首元素才是记录集
		json.NewEncoder(w).Encode(map[string]interface{}{
			"result": "success",
			"data":   []interface{}{rows},
		})
	}
}

func (s *vendorStub) setFailReason(reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failReason = reason
}

// newTestServer 组装完整的HTTP栈：内存数据库 + 平台桩 + 真实路由
func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB, *vendorStub) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.AttendanceDevice{}, &models.AttendanceRecord{}))

	stub := &vendorStub{}
	vendorServer := httptest.NewServer(stub.handler())
	t.Cleanup(vendorServer.Close)

	cfg := &config.Config{
		ExternalAPIURL:      vendorServer.URL,
		ExternalAPIUser:     "admin",
		ExternalAPIPassword: "1234",
		AccessCode:          testAccessCode,
	}

	return routes.SetupRouter(db, cfg, nil), db, stub
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("X-Access-Code", testAccessCode)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// apiResponse 统一响应信封
type apiResponse struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) apiResponse {
	t.Helper()
	var resp apiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func seedDeviceRow(t *testing.T, db *gorm.DB, serialNumber string, deviceType *models.DeviceType) {
	t.Helper()
	require.NoError(t, db.Create(&models.AttendanceDevice{
		DeviceID:     "ext-" + serialNumber,
		SerialNumber: serialNumber,
		Name:         "Device " + serialNumber,
		DeviceType:   deviceType,
		IsActive:     true,
		LastSync:     time.Now(),
		SyncStatus:   models.DeviceSyncStatusActive,
	}).Error)
}
