package connectors

type FetchService struct {
	connector MailConnector
	store     *AttachmentStore
}

type FetchResult struct {
	Fetched int
	Saved   []string
}

func NewFetchService(inboxDir string, connector MailConnector) *FetchService {
	return &FetchService{
		connector: connector,
		store:     NewAttachmentStore(inboxDir),
	}
}

func (s *FetchService) FetchAndStore(label string, max int) (FetchResult, error) {
	messages, err := s.connector.FetchInbox(label, max)
	if err != nil {
		return FetchResult{}, err
	}

	result := FetchResult{Fetched: len(messages)}
	for _, msg := range messages {
		paths, err := s.store.Store(msg)
		if err != nil {
			return result, err
		}
		result.Saved = append(result.Saved, paths...)
	}

	return result, nil
}
