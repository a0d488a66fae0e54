package config

type WorkerKeyStruct struct {
	SyncProfilesQueue string
}

var WorkerKey = &WorkerKeyStruct{
	SyncProfilesQueue: "sync_profiles_queue",
}
