package coin

// MemoLen exposes the number of labels cached by service.
func MemoLen(service *Service) int {
	return service.slugs.Len()
}
