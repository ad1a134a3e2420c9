package script

// Helper routines spliced into generated scripts. They take every caller
// value as an argument and embed none.

const helperTags = `function matchesTags(task, wanted, op) {
  var names = task.tags.map(function (t) { return t.name; });
  var has = function (n) { return names.indexOf(n) !== -1; };
  if (op === "OR") return wanted.some(has);
  if (op === "NOT_IN") return !wanted.some(has);
  return wanted.every(has);
}
function tagsAreValid(task) {
  return task.tags.every(function (t) { return t.status !== Tag.Status.Dropped; });
}`

const helperText = `function matchesText(task, needle, op) {
  var q = String(needle).toLowerCase();
  var fields = [task.name || "", task.note || ""];
  for (var i = 0; i < fields.length; i++) {
    var v = String(fields[i]).toLowerCase();
    if (op === "MATCHES" ? v === q : v.indexOf(q) !== -1) return true;
  }
  return false;
}`

const helperDates = `function parseLocalDate(s, endOfDay) {
  var m = /^(\d{4})-(\d{2})-(\d{2})(?: (\d{2}):(\d{2}))?$/.exec(String(s));
  if (!m) return null;
  if (m[4] !== undefined) {
    return new Date(Number(m[1]), Number(m[2]) - 1, Number(m[3]), Number(m[4]), Number(m[5]));
  }
  if (endOfDay) {
    return new Date(Number(m[1]), Number(m[2]) - 1, Number(m[3]), 23, 59, 59, 999);
  }
  return new Date(Number(m[1]), Number(m[2]) - 1, Number(m[3]));
}
function matchesDateRange(d, after, before, op) {
  if (!d) return false;
  var t = d.getTime();
  var bound;
  switch (op) {
    case "BETWEEN":
      var lo = null, hi = null;
      if (after) { lo = parseLocalDate(after, false); if (!lo) return false; }
      if (before) { hi = parseLocalDate(before, true); if (!hi) return false; }
      return (!lo || t >= lo.getTime()) && (!hi || t <= hi.getTime());
    case "<":
      bound = parseLocalDate(before || after, false);
      return !!bound && t < bound.getTime();
    case "<=":
      bound = parseLocalDate(before || after, true);
      return !!bound && t <= bound.getTime();
    case ">":
      bound = parseLocalDate(after || before, true);
      return !!bound && t > bound.getTime();
    case ">=":
      bound = parseLocalDate(after || before, false);
      return !!bound && t >= bound.getTime();
  }
  return false;
}`

const helperFlags = `function isAvailable(task) {
  var s = task.taskStatus;
  return s === Task.Status.Available || s === Task.Status.Next ||
    s === Task.Status.DueSoon || s === Task.Status.Overdue;
}
function isDueSoon(task, days) {
  var d = task.effectiveDueDate || task.dueDate;
  if (!d) return false;
  var limit = new Date();
  limit.setHours(23, 59, 59, 999);
  limit.setDate(limit.getDate() + days);
  return d.getTime() <= limit.getTime();
}`

const helperSerialize = `function isoOrNull(d) { return d ? d.toISOString() : null; }
function serializeTask(task) {
  return {
    id: task.id.primaryKey,
    name: task.name,
    note: task.note || "",
    completed: task.completed,
    flagged: task.flagged,
    dueDate: isoOrNull(task.dueDate),
    deferDate: isoOrNull(task.deferDate),
    plannedDate: isoOrNull(task.plannedDate),
    tags: task.tags.map(function (t) { return t.name; }),
    project: task.containingProject ? task.containingProject.name : null,
    inInbox: task.inInbox
  };
}`
