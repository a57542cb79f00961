package document

import "errors"

var (
	// ErrDocumentNotFound возвращается, когда документ доступности еще не загружен в хранилище
	ErrDocumentNotFound = errors.New("document.repository: document not found")

	// ErrRead возвращается при ошибке чтения из хранилища
	ErrRead = errors.New("document.repository: failed to read document")

	// ErrWrite возвращается при ошибке записи в хранилище
	ErrWrite = errors.New("document.repository: failed to write document")

	// ErrDecode возвращается, когда сохраненные данные не удалось разобрать
	ErrDecode = errors.New("document.repository: failed to decode document")

	// ErrEncode возвращается, когда документ не удалось сериализовать
	ErrEncode = errors.New("document.repository: failed to encode document")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("document.repository: failed to build query")
)
