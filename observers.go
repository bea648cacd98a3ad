package spindle

type RecordHook func(element Element)

type InstallHook func(module string)

type RecoverHook func(module string, err error)
