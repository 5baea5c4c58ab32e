package transcriber

// ModelOption describes one whisper.cpp model the service can run.
type ModelOption struct {
	ID       string
	FileName string
	URL      string
}

// modelCatalog is the fixed set of supported transcription models.
var modelCatalog = []ModelOption{
	{
		ID:       "base",
		FileName: "ggml-base.bin",
		URL:      "https://huggingface.co/ggerganov/whisper.cpp/resolve/main/ggml-base.bin",
	},
	{
		ID:       "small",
		FileName: "ggml-small.bin",
		URL:      "https://huggingface.co/ggerganov/whisper.cpp/resolve/main/ggml-small.bin",
	},
	{
		ID:       "large-v3",
		FileName: "ggml-large-v3.bin",
		URL:      "https://huggingface.co/ggerganov/whisper.cpp/resolve/main/ggml-large-v3.bin",
	},
}

// AvailableModels returns the ids of all supported models.
func AvailableModels() []string {
	ids := make([]string, 0, len(modelCatalog))
	for _, opt := range modelCatalog {
		ids = append(ids, opt.ID)
	}
	return ids
}

// IsValidModel reports whether modelID is in the catalog.
func IsValidModel(modelID string) bool {
	_, ok := lookupModel(modelID)
	return ok
}

func lookupModel(modelID string) (ModelOption, bool) {
	for _, opt := range modelCatalog {
		if opt.ID == modelID {
			return opt, true
		}
	}
	return ModelOption{}, false
}
