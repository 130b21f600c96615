package test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAbout_CorrectCode(t *testing.T) {
	// Arrange
	handler, _, _, _, _, _, _, mockStorage := newTestHandlers()

	mockStorage.On("OpenResume", mock.Anything).
		Return(io.NopCloser(strings.NewReader("%PDF-1.4 resume")), "resume.pdf", nil)

	form := url.Values{"code": {"top-secret"}}
	req := httptest.NewRequest(http.MethodPost, "/about", formRequest("/about", form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()

	// Act
	handler.About(rr, req)

	// Assert: the file streams as an attachment
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Disposition"), `filename="resume.pdf"`)
	assert.Equal(t, "%PDF-1.4 resume", rr.Body.String())
}

func TestAbout_WrongCode(t *testing.T) {
	// Arrange
	handler, _, _, _, _, _, _, mockStorage := newTestHandlers()

	form := url.Values{"code": {"guess"}}
	req := httptest.NewRequest(http.MethodPost, "/about", formRequest("/about", form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()

	// Act
	handler.About(rr, req)

	// Assert: back to the form with a notice
	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/about", rr.Header().Get("Location"))
	assert.Contains(t, flashCookie(rr), "Неверный код")

	mockStorage.AssertNotCalled(t, "OpenResume", mock.Anything)
}

func TestAbout_EmptyConfiguredCode(t *testing.T) {
	// an unset secret never matches, even an empty submitted code
	handler, _, _, _, _, _, _, mockStorage := newTestHandlers()
	handler.Cfg.ResumeCode = ""

	form := url.Values{"code": {""}}
	req := httptest.NewRequest(http.MethodPost, "/about", formRequest("/about", form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()

	handler.About(rr, req)

	assert.Equal(t, http.StatusFound, rr.Code)
	mockStorage.AssertNotCalled(t, "OpenResume", mock.Anything)
}

func TestDownload_Success(t *testing.T) {
	// Arrange
	handler, _, _, _, _, _, _, mockStorage := newTestHandlers()

	mockStorage.On("OpenResume", mock.Anything).
		Return(io.NopCloser(strings.NewReader("%PDF-1.4 resume")), "resume.pdf", nil)

	req := httptest.NewRequest(http.MethodGet, "/download", nil)
	req = withUser(req, 1)
	rr := httptest.NewRecorder()

	// Act
	handler.Download(rr, req)

	// Assert
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "%PDF-1.4 resume", rr.Body.String())
}

func TestDownload_StorageUnavailable(t *testing.T) {
	handler, _, _, _, _, _, _, mockStorage := newTestHandlers()

	mockStorage.On("OpenResume", mock.Anything).
		Return(nil, "", assert.AnError)

	req := httptest.NewRequest(http.MethodGet, "/download", nil)
	req = withUser(req, 1)
	rr := httptest.NewRecorder()

	handler.Download(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
