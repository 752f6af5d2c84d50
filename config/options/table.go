package options

var table = []any{
	"Path to the SSL certificate file",
	"ssl_certfile", nil,
	nil,

	"Path to the SSL private key file",
	"ssl_keyfile", nil,
	nil,

	"Time (in seconds) after which an idle connection is closed",
	"timeout", 120.0,
	nil,

	"Total time in seconds to wait for clean shutdown",
	"shutdown_timeout", 5.0,
	nil,

	"Enable/disable socket pre-allocation, for example, with systemd socket activation",
	"allow_socket_preallocation", true,
	nil,

	"Max. size of single HTTP header (in KB)",
	"max_header_line_size", 8.0,
	nil,

	"Max. allowed size for files uploaded to the server (in MB)",
	"max_request_body_size", 500.0,
	nil,

	"Minimum size for which responses use data compression (in bytes)",
	"compress_min_size", 1024,
	nil,

	"Number of worker threads used to process requests",
	"worker_count", 10,
	nil,

	"The port on which to listen for connections",
	"port", 8080,
	nil,

	"A prefix to prepend to all URLs",
	"url_prefix", nil,
	"Useful if you wish to run this server behind a reverse proxy.",

	"Advertise OPDS feeds via BonJour",
	"use_bonjour", true,
	"Advertise the OPDS feeds via the BonJour service, so that OPDS based" +
		" reading apps can detect and connect to the server automatically.",

	"Maximum number of books in OPDS feeds",
	"max_opds_items", 30,
	"The maximum number of books that the server will return in a single" +
		" OPDS acquisition feed.",

	"Maximum number of ungrouped items in OPDS feeds",
	"max_opds_ungrouped_items", 100,
	"Group items in categories such as author/tags by first letter when" +
		" there are more than this number of items. Set to zero to disable.",

	"The interface on which to listen for connections",
	"listen_on", "0.0.0.0",
	"The default is to listen on all available interfaces. You can change this to, for" +
		" example, \"127.0.0.1\" to only listen for connections from the local machine, or" +
		" to \"::\" to listen to all incoming IPv6 and IPv4 connections.",

	"Fallback to auto-detected interface",
	"fallback_to_detected_interface", true,
	"If for some reason the server is unable to bind to the interface specified in" +
		" the listen_on option, then it will try to detect an interface that connects" +
		" to the outside world and bind to that.",

	"Enable/disable zero copy file transfers for increased performance",
	"use_sendfile", true,
	"This will use zero-copy in-kernel transfers when sending files over the network," +
		" increasing performance. However, it can cause corrupted file transfers on some" +
		" broken filesystems. If you experience corrupted file transfers, turn it off.",

	"Max. log file size (in MB)",
	"max_log_size", 20,
	"The maximum size of log files, generated by the server. When the log becomes larger" +
		" than this size, it is automatically rotated. Set to zero to disable log rotation.",

	"Enable/disable logging of not found http requests",
	"log_not_found", true,
	"By default, the server logs all HTTP requests for resources that are not found." +
		" This can generate a lot of log spam, if your server is targeted by bots." +
		" Use this option to turn it off.",

	"Enable/disable password based authentication to access the server",
	"auth", false,
	"By default, the server is unrestricted, allowing anyone to access it. You can" +
		" restrict access to predefined users with this option.",

	"Path to user database",
	"userdb", nil,
	"Path to a file in which to store the user and password information. By default a" +
		" file in the configuration directory is used.",

	"Choose the type of authentication used",
	"auth_mode", NewChoices("auto", "basic", "digest"),
	"Set the HTTP authentication mode used by the server. Set to \"basic\" if you are" +
		" putting this server behind an SSL proxy. Otherwise, leave it as \"auto\", which" +
		" will use \"basic\" if SSL is configured otherwise it will use \"digest\".",

	"Ignored user-defined metadata fields",
	"ignored_fields", nil,
	"Comma separated list of user-defined metadata fields that will not be displayed" +
		" by the content server in the /opds and /mobile views.",

	"Only display user-defined fields",
	"displayed_fields", nil,
	"Comma separated list of user-defined metadata fields that will be displayed" +
		" by the content server in the /opds and /mobile views. If you specify this" +
		" option, any fields not in this list will not be displayed.",
}
